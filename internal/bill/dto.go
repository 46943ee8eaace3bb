package bill

import "github.com/fkhayef/discountsplit/internal/share"

// CalculateRequest represents the form submitted to split a discounted bill
type CalculateRequest struct {
	Title        string         `json:"title,omitempty"`
	Participants []*Participant `json:"participants" validate:"required,min=1"`
	TotalBefore  *float64       `json:"total_before,omitempty"` // used only when prices sum to 0
	TotalAfter   *float64       `json:"total_after" validate:"required"`
	Step         *float64       `json:"step,omitempty"` // defaults to the configured step
}

// ParticipantShareResponse represents one row of a calculation
type ParticipantShareResponse struct {
	Name      string  `json:"name"`
	Original  float64 `json:"original"`
	Allocated int64   `json:"allocated"`
}

// CalculationResponse represents the response for a calculation
type CalculationResponse struct {
	ID             string                      `json:"id"`
	Title          string                      `json:"title,omitempty"`
	Participants   []*ParticipantShareResponse `json:"participants"`
	OriginalTotal  float64                     `json:"original_total"`
	ReferenceTotal float64                     `json:"reference_total"`
	TargetTotal    float64                     `json:"target_total"`
	Total          int64                       `json:"total"`
	Step           int64                       `json:"step"`
	Discount       float64                     `json:"discount"`
	CreatedAt      string                      `json:"created_at"`
}

// ShareResponse carries a rendered summary and deep links to send it
type ShareResponse struct {
	Calculation *CalculationResponse `json:"calculation"`
	Summary     string               `json:"summary"`
	Links       share.Links          `json:"links"`
}

// ToResponse converts a Calculation to a CalculationResponse DTO
func (c *Calculation) ToResponse() *CalculationResponse {
	participants := make([]*ParticipantShareResponse, len(c.Participants))
	for i, p := range c.Participants {
		participants[i] = &ParticipantShareResponse{
			Name:      p.Name,
			Original:  p.Original,
			Allocated: p.Allocated,
		}
	}
	return &CalculationResponse{
		ID:             c.ID.String(),
		Title:          c.Title,
		Participants:   participants,
		OriginalTotal:  c.OriginalTotal,
		ReferenceTotal: c.ReferenceTotal,
		TargetTotal:    c.TargetTotal,
		Total:          c.Total,
		Step:           c.Step,
		Discount:       c.Discount(),
		CreatedAt:      c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a SharedCalculation to a ShareResponse DTO
func (s *SharedCalculation) ToResponse() *ShareResponse {
	return &ShareResponse{
		Calculation: s.Calculation.ToResponse(),
		Summary:     s.Summary,
		Links:       s.Links,
	}
}
