// Package naming turns game display names into valid UTF-8.
//
// The game stores names in whatever codepage the plugin author's editor used.
// Names that already are UTF-8 pass through untouched; anything else is read
// as Windows-1252, which is a superset of ISO-8859-1 for printable text.
package naming

import (
	"bytes"
	"log/slog"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeDisplayName converts raw name bytes into a UTF-8 string.
// A single trailing NUL from a C string is dropped.
func DecodeDisplayName(raw []byte) string {
	raw = bytes.TrimSuffix(raw, []byte{0})
	if len(raw) == 0 {
		return ""
	}
	if utf8.Valid(raw) {
		return string(raw)
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		slog.Debug(LogMsgDecodeFailed, "error", err)
		return string(bytes.ToValidUTF8(raw, []byte("�")))
	}
	return string(decoded)
}

// DisplayName is DecodeDisplayName for names already held in a Go string.
func DisplayName(name string) string {
	if utf8.ValidString(name) && (len(name) == 0 || name[len(name)-1] != 0) {
		return name
	}
	return DecodeDisplayName([]byte(name))
}

// LogMsgDecodeFailed is logged when codepage decoding fails.
const LogMsgDecodeFailed = "Display name decoding failed, replacing invalid bytes"
