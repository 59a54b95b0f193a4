// Package textio reads on-disk text the way a scan tool has to: byte
// order marks are honored and malformed sequences decode to U+FFFD
// instead of failing the whole read. Unity projects accumulate files
// with mixed encodings and the scanner must degrade to best-effort
// coverage rather than abort.
package textio

import (
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewReader wraps r with tolerant decoding. A leading UTF-8 or UTF-16
// BOM switches the decoder accordingly; invalid byte sequences are
// replaced with U+FFFD.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// ReadFile returns the decoded contents of path.
func ReadFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(NewReader(file))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
