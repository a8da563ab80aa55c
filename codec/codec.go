// Package codec encodes and decodes set collections.
//
// A collection is a map from set name to its elements. Every codec must
// round-trip empty sets.
package codec

import (
	"fmt"
	"io"
	"path"
	"strings"
)

// Codec encodes/decodes set collections.
// Implementations must be safe for concurrent use.
type Codec interface {
	Decode(r io.Reader) (map[string][]string, error)
	Encode(w io.Writer, sets map[string][]string) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "csv":
		return CSV{}, true
	case "tsv":
		return CSV{Comma: '\t'}, true
	case "json":
		return JSON{}, true
	default:
		return nil, false
	}
}

// ForPath returns the codec matching the extension of p. A trailing
// compression extension (.zst, .lz4, .gz) is ignored.
func ForPath(p string) (Codec, error) {
	base, _ := TrimCompression(p)
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(base)), ".")
	c, ok := ByName(ext)
	if !ok {
		return nil, fmt.Errorf("codec: no codec for %q", p)
	}
	return c, nil
}

// TrimCompression strips a known compression extension from p and returns
// the remaining name and the stripped extension (without dot, empty if none).
func TrimCompression(p string) (string, string) {
	ext := strings.ToLower(path.Ext(p))
	switch ext {
	case ".zst", ".lz4", ".gz":
		return strings.TrimSuffix(p, p[len(p)-len(ext):]), ext[1:]
	default:
		return p, ""
	}
}
