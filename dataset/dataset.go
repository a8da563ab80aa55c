package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/setcover/blobstore"
	"github.com/hupe1980/setcover/codec"
)

// Dataset is a named set collection.
type Dataset struct {
	Name string
	Sets map[string][]string
}

// Len returns the number of sets.
func (d *Dataset) Len() int {
	return len(d.Sets)
}

// Memberships returns the total number of (set, element) pairs, counting
// repeated elements.
func (d *Dataset) Memberships() int {
	n := 0
	for _, elems := range d.Sets {
		n += len(elems)
	}
	return n
}

// Universe returns the number of distinct elements.
func (d *Dataset) Universe() int {
	seen := make(map[string]struct{})
	for _, elems := range d.Sets {
		for _, e := range elems {
			seen[e] = struct{}{}
		}
	}
	return len(seen)
}

// Read decodes a dataset from r. The codec and compression are chosen from
// name.
func Read(r io.Reader, name string) (*Dataset, error) {
	c, err := codec.ForPath(name)
	if err != nil {
		return nil, err
	}
	_, ext := codec.TrimCompression(name)

	rc, err := decompress(r, ext)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	sets, err := c.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", name, err)
	}
	return &Dataset{Name: name, Sets: sets}, nil
}

// Write encodes d to w. The codec and compression are chosen from name.
func Write(w io.Writer, name string, d *Dataset) error {
	c, err := codec.ForPath(name)
	if err != nil {
		return err
	}
	_, ext := codec.TrimCompression(name)

	wc, err := compress(w, ext)
	if err != nil {
		return err
	}
	if err := c.Encode(wc, d.Sets); err != nil {
		_ = wc.Close()
		return fmt.Errorf("dataset: %s: %w", name, err)
	}
	return wc.Close()
}

// Load reads the named dataset from store.
func Load(ctx context.Context, store blobstore.Store, name string) (*Dataset, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", name, err)
	}
	defer func() { _ = rc.Close() }()

	return Read(rc, name)
}

// Save writes d to store under name.
func Save(ctx context.Context, store blobstore.Store, name string, d *Dataset) error {
	var buf bytes.Buffer
	if err := Write(&buf, name, d); err != nil {
		return err
	}
	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("dataset: put %s: %w", name, err)
	}
	return nil
}

// LoadAll loads the named datasets with at most concurrency loads in flight.
// Results are returned in the order of names. A concurrency below one loads
// sequentially.
func LoadAll(ctx context.Context, store blobstore.Store, names []string, concurrency int) ([]*Dataset, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	out := make([]*Dataset, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, name := range names {
		g.Go(func() error {
			d, err := Load(ctx, store, name)
			if err != nil {
				return err
			}
			out[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
