package codec

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// JSON stores a collection as one object mapping set names to element arrays.
type JSON struct{}

// Name implements Codec.
func (JSON) Name() string { return "json" }

// Decode implements Codec.
func (JSON) Decode(r io.Reader) (map[string][]string, error) {
	var sets map[string][]string
	if err := json.NewDecoder(r).Decode(&sets); err != nil {
		return nil, fmt.Errorf("codec: decode json: %w", err)
	}
	if sets == nil {
		sets = map[string][]string{}
	}
	for name, elems := range sets {
		if elems == nil {
			sets[name] = []string{}
		}
	}
	return sets, nil
}

// Encode implements Codec.
func (JSON) Encode(w io.Writer, sets map[string][]string) error {
	out := make(map[string][]string, len(sets))
	for name, elems := range sets {
		if elems == nil {
			elems = []string{}
		}
		out[name] = elems
	}
	return json.NewEncoder(w).Encode(out)
}
