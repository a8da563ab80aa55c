package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

// ErrEmptyElement is returned by CSV.Encode for an empty-string element. The
// format reserves an empty element column for declaring an empty set.
var ErrEmptyElement = errors.New("codec: csv cannot encode an empty element")

// CSV stores one membership per row under a "set,element" header. A row
// with an empty element declares a set without adding to it.
type CSV struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// Name implements Codec.
func (c CSV) Name() string {
	if c.Comma == '\t' {
		return "tsv"
	}
	return "csv"
}

func (c CSV) comma() rune {
	if c.Comma == 0 {
		return ','
	}
	return c.Comma
}

// Decode implements Codec.
func (c CSV) Decode(r io.Reader) (map[string][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = c.comma()
	cr.FieldsPerRecord = 2
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return map[string][]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("codec: read csv header: %w", err)
	}
	if header[0] != "set" || header[1] != "element" {
		return nil, fmt.Errorf("codec: unexpected csv header %q", header)
	}

	sets := make(map[string][]string)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return sets, nil
		}
		if err != nil {
			return nil, fmt.Errorf("codec: read csv: %w", err)
		}
		name, elem := rec[0], rec[1]
		if elem == "" {
			if _, ok := sets[name]; !ok {
				sets[name] = []string{}
			}
			continue
		}
		sets[name] = append(sets[name], elem)
	}
}

// Encode implements Codec. Sets are written in name order. Nothing is
// written if any set holds an empty element.
func (c CSV) Encode(w io.Writer, sets map[string][]string) error {
	names := slices.Sorted(maps.Keys(sets))
	for _, name := range names {
		if slices.Contains(sets[name], "") {
			return fmt.Errorf("%w in set %q", ErrEmptyElement, name)
		}
	}

	cw := csv.NewWriter(w)
	cw.Comma = c.comma()

	if err := cw.Write([]string{"set", "element"}); err != nil {
		return err
	}
	for _, name := range names {
		elems := sets[name]
		if len(elems) == 0 {
			if err := cw.Write([]string{name, ""}); err != nil {
				return err
			}
			continue
		}
		for _, e := range elems {
			if err := cw.Write([]string{name, e}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
