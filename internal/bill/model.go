package bill

import (
	"time"

	"github.com/google/uuid"

	"github.com/fkhayef/discountsplit/internal/share"
)

// Participant is one person on the bill with their pre-discount price
type Participant struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ParticipantShare is a participant's original price next to what they pay
// after the discount
type ParticipantShare struct {
	Name      string
	Original  float64
	Allocated int64
}

// Calculation is the outcome of splitting one discounted bill
type Calculation struct {
	ID             uuid.UUID
	Title          string
	Participants   []ParticipantShare // same order as the request
	OriginalTotal  float64            // sum of participant prices
	ReferenceTotal float64            // total the shares were scaled against
	TargetTotal    float64            // post-discount total requested
	Total          int64              // sum of allocated shares
	Step           int64              // effective rounding step
	CreatedAt      time.Time
}

// SharedCalculation is a calculation with its rendered summary and deep links
type SharedCalculation struct {
	Calculation *Calculation
	Summary     string
	Links       share.Links
}

// Discount is the amount saved relative to the reference total
func (c *Calculation) Discount() float64 {
	return c.ReferenceTotal - c.TargetTotal
}

// Sheet converts the calculation into the shape the share renderer expects
func (c *Calculation) Sheet() share.Sheet {
	lines := make([]share.Line, len(c.Participants))
	for i, p := range c.Participants {
		lines[i] = share.Line{
			Name:      p.Name,
			Original:  p.Original,
			Allocated: p.Allocated,
		}
	}
	return share.Sheet{
		Title:          c.Title,
		Lines:          lines,
		OriginalTotal:  c.OriginalTotal,
		ReferenceTotal: c.ReferenceTotal,
		Total:          c.Total,
	}
}
