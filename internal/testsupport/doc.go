// Package testsupport holds fixtures shared by package tests: throwaway
// configurations rooted in t.TempDir, captured loggers and a tiny PDF builder.
package testsupport
