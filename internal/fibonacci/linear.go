package fibonacci

import (
	"context"

	"github.com/jwang0306/fibdrv/internal/bignum"
	apperrors "github.com/jwang0306/fibdrv/internal/errors"
	"github.com/jwang0306/fibdrv/internal/sysmon"
)

// LinearScan computes F(k) by the defining recurrence, keeping the dense
// history f[0..k] alive for the whole computation: f[0]=0, f[1]=1,
// f[i] = f[i-1] + f[i-2]. Cost is k-1 additions; memory is O(k) BigDecimal
// values whose combined digit footprint grows quadratically with k.
//
// The history is allocated on the heap and sized up front. Before
// allocating, the estimated footprint is checked against the configured
// memory budget and the memory actually available on the host; the
// computation fails with apperrors.MemoryError instead of committing to an
// allocation that could not be satisfied. This replaces the historical
// stack-allocated variable-length array, which silently overflowed for
// large k.
type LinearScan struct{}

// Name returns the descriptive name of the strategy.
func (ls *LinearScan) Name() string {
	return "Linear Scan (O(k), dense history)"
}

// CalculateCore computes F(k) via the dynamic-programming sweep.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - reporter: The function used for reporting progress.
//   - k: The Fibonacci index to compute.
//   - opts: Configuration options (memory budget).
//
// Returns:
//   - bignum.BigDecimal: F(k).
//   - error: MemoryError when the history would exceed the budget, or a
//     context error on cancellation.
func (ls *LinearScan) CalculateCore(ctx context.Context, reporter ProgressReporter, k uint64, opts Options) (bignum.BigDecimal, error) {
	if err := checkHistoryBudget(k, opts); err != nil {
		return bignum.BigDecimal{}, err
	}

	if k == 0 {
		return bignum.Zero(), nil
	}

	history := make([]bignum.BigDecimal, k+1)
	history[0] = bignum.Zero()
	history[1] = bignum.One()

	for i := uint64(2); i <= k; i++ {
		if i%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return bignum.BigDecimal{}, ctx.Err()
			default:
			}
			reporter(float64(i) / float64(k))
		}
		history[i] = bignum.Add(history[i-1], history[i-2])
	}

	return history[k], nil
}

// estimateHistoryBytes approximates the combined digit footprint of the
// f[0..k] history. F(i) has about i·log10(phi)+1 decimal digits, one byte
// each, so the digit storage sums to roughly 0.104·k² bytes; each entry
// additionally carries a slice header and the history slice itself holds
// k+1 descriptors.
func estimateHistoryBytes(k uint64) uint64 {
	const perEntryOverhead = 48 // slice header + allocator rounding, approximate
	digitBytes := uint64(digitsPerIndex*float64(k)*float64(k)/2) + k
	return digitBytes + (k+1)*perEntryOverhead
}

// checkHistoryBudget refuses the computation when the estimated history
// footprint exceeds the configured budget or the memory available on the
// host. A zero available-memory reading (unsupported platform) disables the
// host check and leaves only the budget.
func checkHistoryBudget(k uint64, opts Options) error {
	estimate := estimateHistoryBytes(k)
	if estimate > opts.MemoryBudget {
		return apperrors.MemoryError{
			Requested: estimate,
			Available: sysmon.AvailableMemory(),
			Limit:     opts.MemoryBudget,
		}
	}
	if avail := sysmon.AvailableMemory(); avail > 0 && estimate > avail {
		return apperrors.MemoryError{
			Requested: estimate,
			Available: avail,
			Limit:     opts.MemoryBudget,
		}
	}
	return nil
}
