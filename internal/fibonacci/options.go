// This file contains configuration options and tuning constants for the
// Fibonacci strategies.
package fibonacci

const (
	// DefaultMaxIndex is the legacy ceiling on the Fibonacci index exposed
	// through the device boundary. F(150) has 31 decimal digits, well past
	// the reach of native 64-bit arithmetic.
	DefaultMaxIndex = 150

	// MaxFibUint64 = 93 because F(93) is the largest Fibonacci number that
	// fits in a uint64; F(94) exceeds 2^64. Used by tests to delimit the
	// range where native arithmetic can serve as an oracle.
	MaxFibUint64 = 93

	// DefaultMemoryBudget bounds the linear-scan history footprint (256 MiB).
	// The historical implementation sized a stack array by k, a latent
	// overflow for large indices; the budget makes the allocation explicit
	// and refusable.
	DefaultMemoryBudget = 256 << 20

	// digitsPerIndex is log10(phi), where phi ≈ 1.618 (golden ratio).
	// F(k) has roughly k·log10(phi) decimal digits; used to estimate the
	// linear-scan history footprint before allocating it.
	digitsPerIndex = 0.20899

	// doublingRounds is the fixed number of bit positions the legacy-faithful
	// fast-doubling variant processes, the full width of the uint64 index
	// type. The original driver used 32 for its native int index; leading
	// zero rounds are executed but leave the (0, 1) pair unchanged.
	doublingRounds = 64

	// cancelCheckInterval is the number of linear-scan iterations between
	// context cancellation checks.
	cancelCheckInterval = 64
)

// Options configures a Fibonacci computation.
type Options struct {
	// MemoryBudget caps the estimated byte footprint of the linear-scan
	// history. If 0, DefaultMemoryBudget is used. Computations whose
	// estimate exceeds the budget (or the memory currently available on the
	// host) fail with apperrors.MemoryError instead of allocating.
	MemoryBudget uint64
}

// normalizeOptions returns a copy of opts with default values filled in for
// zero values, ensuring consistent handling across all strategies.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.MemoryBudget == 0 {
		normalized.MemoryBudget = DefaultMemoryBudget
	}
	return normalized
}
