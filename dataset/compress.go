package dataset

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

func decompress(r io.Reader, ext string) (io.ReadCloser, error) {
	switch ext {
	case "":
		return io.NopCloser(r), nil
	case "zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("dataset: zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case "gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("dataset: gzip reader: %w", err)
		}
		return gz, nil
	case "lz4":
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("dataset: unsupported compression %q", ext)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func compress(w io.Writer, ext string) (io.WriteCloser, error) {
	switch ext {
	case "":
		return nopWriteCloser{w}, nil
	case "zst":
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("dataset: zstd writer: %w", err)
		}
		return enc, nil
	case "gz":
		return gzip.NewWriter(w), nil
	case "lz4":
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("dataset: unsupported compression %q", ext)
	}
}
