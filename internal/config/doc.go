// Package config loads, normalizes, and validates textprep configuration data.
//
// It supplies repository defaults (the ./PDF, ./SRT/*.srt and ./TXT folders
// the batch tools have always used), expands user paths including tilde
// shortcuts, and reads TOML files. The Config type centralizes every knob the
// PDF and subtitle pipelines need so both commands resolve their folders in
// one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical charset names and clear validation errors.
package config
