package vtt

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// lineBreaks collapses every line terminator WebVTT tolerates into "\n".
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	" ", "\n",
	" ", "\n",
)

// Decode converts a raw subtitle payload into normalized text. UTF-8 with or
// without a BOM and BOM-tagged UTF-16 are accepted; invalid byte sequences
// are replaced rather than rejected. Line terminators are normalized to "\n".
func Decode(raw []byte) (string, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("decoding payload: %w", err)
	}
	return lineBreaks.Replace(string(decoded)), nil
}
