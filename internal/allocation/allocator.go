package allocation

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// =============================================================================
// PROPORTIONAL DISCOUNT ALLOCATION
// Scales every original amount by targetTotal/referenceTotal, floors each
// share to the rounding step and hands the leftover back by largest remainder
// =============================================================================

// DefaultStep is the rounding granularity used when the caller does not pick one
const DefaultStep = 100

// mismatchTolerance is how far sum(amounts) may drift from the reference total
// before a diagnostic is logged
const mismatchTolerance = 1.0

// maxExact bounds every total and scaled amount so shares stay integral in
// a float64 and fit an int64
const maxExact = 1 << 53

var (
	// ErrInvalidInput is wrapped by every validation failure
	ErrInvalidInput = errors.New("invalid input")

	ErrInvalidCount          = fmt.Errorf("%w: count must be a positive integer", ErrInvalidInput)
	ErrAmountsLength         = fmt.Errorf("%w: number of amounts must equal count", ErrInvalidInput)
	ErrInvalidReferenceTotal = fmt.Errorf("%w: reference total must be greater than 0", ErrInvalidInput)
	ErrNonFinite             = fmt.Errorf("%w: amounts and target total must be finite numbers", ErrInvalidInput)
	ErrOutOfRange            = fmt.Errorf("%w: amounts exceed the exactly representable range", ErrInvalidInput)
)

// Request describes a single allocation
type Request struct {
	Count          int
	Amounts        []float64 // original (pre-discount) amount per participant
	ReferenceTotal float64   // pre-discount total, used only as the scaling denominator
	TargetTotal    float64   // post-discount total to distribute
	Step           float64   // rounding granularity; truncated, values below 1 become 1
}

// NewRequest builds a request for the given amounts using DefaultStep
func NewRequest(amounts []float64, referenceTotal, targetTotal float64) Request {
	return Request{
		Count:          len(amounts),
		Amounts:        amounts,
		ReferenceTotal: referenceTotal,
		TargetTotal:    targetTotal,
		Step:           DefaultStep,
	}
}

// Result holds the allocated shares, index-aligned with Request.Amounts
type Result struct {
	Shares []int64
	Total  int64
	Step   int64 // effective step after normalization
}

// Allocator computes proportional allocations. It keeps no state besides the
// logger and may be shared between goroutines.
type Allocator struct {
	logger *slog.Logger
}

// New creates an allocator that reports diagnostics to logger.
// A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Allocator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Allocator{logger: logger}
}

// Validate checks the request without computing anything
func (a *Allocator) Validate(req Request) error {
	if req.Count <= 0 {
		return ErrInvalidCount
	}
	if len(req.Amounts) != req.Count {
		return ErrAmountsLength
	}
	if !(req.ReferenceTotal > 0) {
		return ErrInvalidReferenceTotal
	}
	if !isFinite(req.TargetTotal) || math.IsInf(req.ReferenceTotal, 0) {
		return ErrNonFinite
	}
	for _, v := range req.Amounts {
		if !isFinite(v) {
			return ErrNonFinite
		}
	}
	if math.Abs(req.TargetTotal) > maxExact || EffectiveStep(req.Step) > maxExact {
		return ErrOutOfRange
	}
	factor := req.TargetTotal / req.ReferenceTotal
	for _, v := range req.Amounts {
		if math.Abs(v*factor) > maxExact {
			return ErrOutOfRange
		}
	}
	return nil
}

// Allocate splits req.TargetTotal among the participants.
//
// Every share starts as its proportional amount floored to the step. The gap
// to round(TargetTotal) is then handed out in priority order of the fraction
// lost to flooring: first one whole step per participant, then single units.
// Neither pass wraps around, so when the gap exceeds one step per participant
// the returned Total falls short of the target.
func (a *Allocator) Allocate(req Request) (Result, error) {
	if err := a.Validate(req); err != nil {
		return Result{}, err
	}

	amounts := make([]float64, len(req.Amounts))
	copy(amounts, req.Amounts)

	var sum float64
	for _, v := range amounts {
		sum += v
	}
	if diff := sum - req.ReferenceTotal; math.Abs(diff) > mismatchTolerance {
		a.logger.Warn("reference total does not match sum of amounts; scaling by reference total",
			"sum", sum,
			"reference_total", req.ReferenceTotal,
			"difference", diff,
		)
	}

	factor := req.TargetTotal / req.ReferenceTotal
	step := EffectiveStep(req.Step)
	stepF := float64(step)

	raw := make([]float64, len(amounts))
	shares := make([]int64, len(amounts))
	var flooredSum float64
	for i, v := range amounts {
		raw[i] = v * factor
		floored := math.Floor(raw[i]/stepF) * stepF
		shares[i] = int64(floored)
		flooredSum += floored
	}

	gap := roundHalfUp(req.TargetTotal - flooredSum)
	if math.Abs(gap) >= math.MaxInt64 {
		return Result{}, ErrOutOfRange
	}
	remainder := int64(gap)

	order := priorityOrder(raw, shares)

	if remainder >= step {
		increments := remainder / step
		for k := int64(0); k < increments && k < int64(len(order)); k++ {
			shares[order[k]] += step
		}
		remainder -= increments * step
	}

	for k := 0; k < len(order) && remainder > 0; k++ {
		shares[order[k]]++
		remainder--
	}

	var total int64
	for _, s := range shares {
		total += s
	}

	return Result{Shares: shares, Total: total, Step: step}, nil
}

// EffectiveStep truncates step toward zero and clamps it to at least 1
func EffectiveStep(step float64) int64 {
	if math.IsNaN(step) || step < 1 {
		return 1
	}
	if step >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Trunc(step))
}

// priorityOrder returns participant indices sorted by descending fractional
// loss; equal losses keep their original order
func priorityOrder(raw []float64, floored []int64) []int {
	frac := make([]float64, len(raw))
	order := make([]int, len(raw))
	for i := range raw {
		frac[i] = raw[i] - float64(floored[i])
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return frac[order[x]] > frac[order[y]]
	})
	return order
}

// roundHalfUp rounds to the nearest integer, halves toward +Inf
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
