package setcover

import (
	"fmt"
	"strings"
)

// Mode selects the greedy selector implementation.
type Mode int

const (
	// ModeNaive scores candidates with exact hash-set intersections.
	ModeNaive Mode = iota
	// ModeBitset scores candidates with dense bit vectors and population counts.
	ModeBitset
)

// String returns the stable name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNaive:
		return "naive"
	case ModeBitset:
		return "bitset"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is a recognized mode.
func (m Mode) Valid() bool {
	return m == ModeNaive || m == ModeBitset
}

// ParseMode parses a mode name. Besides "naive" and "bitset" it accepts the
// legacy names "greedy-0"/"greedy-1" and the numeric selectors "0"/"1".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naive", "greedy-0", "0":
		return ModeNaive, nil
	case "bitset", "greedy-1", "1":
		return ModeBitset, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrConfiguration, s)
	}
}

// Bitmap selects the bit-vector representation used by ModeBitset.
type Bitmap int

const (
	// DenseBitmap uses fixed-length uint64 word vectors.
	DenseBitmap Bitmap = iota
	// RoaringBitmap uses compressed roaring bitmaps; better for sparse sets
	// over large universes.
	RoaringBitmap
)

// String returns the stable name of the bitmap kind.
func (b Bitmap) String() string {
	switch b {
	case DenseBitmap:
		return "dense"
	case RoaringBitmap:
		return "roaring"
	default:
		return fmt.Sprintf("Bitmap(%d)", int(b))
	}
}

// ParseBitmap parses a bitmap kind name ("dense" or "roaring").
func ParseBitmap(s string) (Bitmap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dense":
		return DenseBitmap, nil
	case "roaring":
		return RoaringBitmap, nil
	default:
		return 0, fmt.Errorf("%w: unknown bitmap %q", ErrConfiguration, s)
	}
}
