package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents the instruction set used by the bit-vector kernels.
type ISA uint8

const (
	// Generic represents the portable SWAR implementation (no hardware popcount).
	Generic ISA = iota
	// POPCNT represents x86-64 with the POPCNT instruction.
	POPCNT
	// NEON represents ARM64 ASIMD (vector CNT).
	NEON
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case POPCNT:
		return "popcnt"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "popcnt":
		return POPCNT, true
	case "neon":
		return NEON, true
	default:
		return Generic, false
	}
}

// EnvOverride is the environment variable consulted at init to force an ISA.
const EnvOverride = "SETCOVER_SIMD"

// Package-level state - initialized once at package init.
var (
	activeISA   ISA
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasPOPCNT bool // x86-64 POPCNT
	hasASIMD  bool // ARM64 NEON
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			useISA(isa)
			return
		}
		// Invalid or unavailable override - fall through to auto-detection
	}

	useISA(selectBestISA())
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case POPCNT:
		return hasPOPCNT
	case NEON:
		return hasASIMD
	default:
		return false
	}
}

// selectBestISA chooses the optimal ISA for the current platform.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "amd64":
		if hasPOPCNT {
			return POPCNT
		}
	case "arm64":
		if hasASIMD {
			return NEON
		}
	}
	return Generic
}

// useISA swaps the counting kernels. Logic kernels are shared by all ISAs.
func useISA(isa ISA) {
	activeISA = isa
	if isa == Generic {
		kernelPopcountWords = popcountWordsSWAR
		kernelAndPopcountWords = andPopcountWordsSWAR
		return
	}
	kernelPopcountWords = popcountWordsGeneric
	kernelAndPopcountWords = andPopcountWordsGeneric
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if SETCOVER_SIMD selected the ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasPOPCNT returns true if x86-64 POPCNT is available.
func HasPOPCNT() bool {
	return hasPOPCNT
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
