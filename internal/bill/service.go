package bill

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fkhayef/discountsplit/internal/allocation"
	"github.com/fkhayef/discountsplit/internal/share"
)

// Common errors. All of them wrap allocation.ErrInvalidInput so callers can
// treat form and allocation failures alike.
var (
	ErrNoParticipants = fmt.Errorf("%w: at least one participant is required", allocation.ErrInvalidInput)
	ErrInvalidPrice   = fmt.Errorf("%w: price must be a non-negative number", allocation.ErrInvalidInput)
	ErrMissingTotal   = fmt.Errorf("%w: total after discount is required", allocation.ErrInvalidInput)
)

// Allocator splits a target total proportionally
type Allocator interface {
	Allocate(req allocation.Request) (allocation.Result, error)
}

// Service turns submitted bills into calculations
type Service struct {
	allocator   Allocator
	defaultStep float64
	logger      *slog.Logger
	now         func() time.Time
}

// NewService creates a new bill service with dependencies injected
func NewService(allocator Allocator, defaultStep float64, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		allocator:   allocator,
		defaultStep: defaultStep,
		logger:      logger,
		now:         time.Now,
	}
}

// Calculate validates the form, derives the allocation request and splits
// the discounted total among the participants
func (s *Service) Calculate(ctx context.Context, req *CalculateRequest) (*Calculation, error) {
	if len(req.Participants) == 0 {
		return nil, ErrNoParticipants
	}
	if req.TotalAfter == nil {
		return nil, ErrMissingTotal
	}

	names := make([]string, len(req.Participants))
	prices := make([]float64, len(req.Participants))
	var sum float64
	for i, p := range req.Participants {
		names[i] = participantName(p, i)
		if p == nil || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price < 0 {
			return nil, fmt.Errorf("%w (%s)", ErrInvalidPrice, names[i])
		}
		prices[i] = p.Price
		sum += p.Price
	}

	// The price sum is preferred; an explicit total is only used when the
	// prices carry no weight at all.
	reference := sum
	if sum <= 0 && req.TotalBefore != nil {
		reference = *req.TotalBefore
		s.logger.DebugContext(ctx, "prices sum to zero, using explicit total before discount",
			"total_before", reference)
	}

	step := s.defaultStep
	if req.Step != nil {
		step = *req.Step
	}

	result, err := s.allocator.Allocate(allocation.Request{
		Count:          len(prices),
		Amounts:        prices,
		ReferenceTotal: reference,
		TargetTotal:    *req.TotalAfter,
		Step:           step,
	})
	if err != nil {
		return nil, err
	}

	shares := make([]ParticipantShare, len(prices))
	for i := range prices {
		shares[i] = ParticipantShare{
			Name:      names[i],
			Original:  prices[i],
			Allocated: result.Shares[i],
		}
	}

	calc := &Calculation{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(req.Title),
		Participants:   shares,
		OriginalTotal:  sum,
		ReferenceTotal: reference,
		TargetTotal:    *req.TotalAfter,
		Total:          result.Total,
		Step:           result.Step,
		CreatedAt:      s.now().UTC(),
	}

	s.logger.InfoContext(ctx, "bill calculated",
		"calculation_id", calc.ID.String(),
		"participants", len(shares),
		"reference_total", reference,
		"target_total", calc.TargetTotal,
		"total", calc.Total,
		"step", calc.Step,
	)
	if rounded := int64(math.Floor(calc.TargetTotal + 0.5)); calc.Total != rounded {
		s.logger.WarnContext(ctx, "allocated total differs from target",
			"calculation_id", calc.ID.String(),
			"total", calc.Total,
			"target_total", rounded,
		)
	}

	return calc, nil
}

// Summary renders a calculation as shareable text
func (s *Service) Summary(calc *Calculation) string {
	return share.Summary(calc.Sheet())
}

// Share calculates the bill and prepares the summary with deep links
func (s *Service) Share(ctx context.Context, req *CalculateRequest) (*SharedCalculation, error) {
	calc, err := s.Calculate(ctx, req)
	if err != nil {
		return nil, err
	}
	summary := s.Summary(calc)
	return &SharedCalculation{
		Calculation: calc,
		Summary:     summary,
		Links:       share.AllLinks(summary),
	}, nil
}

// participantName falls back to "Participant N" for blank names
func participantName(p *Participant, i int) string {
	if p != nil {
		if name := strings.TrimSpace(p.Name); name != "" {
			return name
		}
	}
	return fmt.Sprintf("Participant %d", i+1)
}
