package subtitles

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// DecodeMode selects how malformed input bytes are handled.
type DecodeMode string

const (
	// DecodeIgnore drops bytes that cannot be decoded.
	DecodeIgnore DecodeMode = "ignore"
	// DecodeReplace substitutes U+FFFD for bytes that cannot be decoded.
	DecodeReplace DecodeMode = "replace"
)

const utf8Name = "utf-8"

// Decode converts raw subtitle bytes to text. enc is a WHATWG encoding label;
// empty means UTF-8. Malformed input never fails: it is dropped or replaced
// according to mode. Line endings are normalized to \n.
func Decode(raw []byte, enc string, mode DecodeMode) (string, error) {
	name, err := canonicalEncoding(enc)
	if err != nil {
		return "", err
	}
	if mode == "" {
		mode = DecodeIgnore
	}
	if mode != DecodeIgnore && mode != DecodeReplace {
		return "", fmt.Errorf("unsupported decode mode %q", mode)
	}

	var text string
	if name == utf8Name {
		text, err = decodeUTF8(raw, mode)
	} else {
		text, err = decodeCharset(raw, name, mode)
	}
	if err != nil {
		return "", err
	}
	return normalizeNewlines(text), nil
}

// DecodeFile reads path and decodes it with Decode.
func DecodeFile(path, enc string, mode DecodeMode) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read subtitle: %w", err)
	}
	return Decode(raw, enc, mode)
}

func canonicalEncoding(enc string) (string, error) {
	enc = strings.TrimSpace(enc)
	if enc == "" {
		return utf8Name, nil
	}
	e, err := htmlindex.Get(enc)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", enc, err)
	}
	name, err := htmlindex.Name(e)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", enc, err)
	}
	return name, nil
}

func decodeUTF8(raw []byte, mode DecodeMode) (string, error) {
	if mode == DecodeIgnore {
		return strings.ToValidUTF8(string(raw), ""), nil
	}
	text, _, err := transform.String(runes.ReplaceIllFormed(), string(raw))
	if err != nil {
		return "", fmt.Errorf("decode utf-8: %w", err)
	}
	return text, nil
}

func decodeCharset(raw []byte, name string, mode DecodeMode) (string, error) {
	e, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	decoded, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	text := string(decoded)
	if mode == DecodeIgnore {
		text = strings.ReplaceAll(text, "\uFFFD", "")
	}
	return text, nil
}

func normalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
