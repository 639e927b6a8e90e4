package stats

import (
	"time"

	"grabbber/internal/services/revenue"
)

// Snapshot is the current value of every counter.
type Snapshot struct {
	Selections      map[revenue.Tier]int64 `json:"selections"`
	Inquiries       map[revenue.Tier]int64 `json:"inquiries"`
	TotalSelections int64                  `json:"total_selections"`
	TotalInquiries  int64                  `json:"total_inquiries"`
	TakenAt         time.Time              `json:"taken_at"`
}

// Frame is one step of an animated counter.
type Frame struct {
	Value    int   `json:"value"`
	AtMillis int64 `json:"at_ms"`
}

// Hero is the payload behind the hero section's stat counters.
type Hero struct {
	SharePercent int     `json:"share_percent"`
	UpfrontCost  string  `json:"upfront_cost"`
	Frames       []Frame `json:"frames"`
}
