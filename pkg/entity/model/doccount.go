package model

import "time"

// DocCounts holds per-channel document totals for one keyword.
// A failed channel is reported as 0, not as an error.
type DocCounts struct {
	Keyword     string    `json:"keyword"`
	BlogTotal   int       `json:"blogTotal"`
	CafeTotal   int       `json:"cafeTotal"`
	WebTotal    int       `json:"webTotal"`
	NewsTotal   int       `json:"newsTotal"`
	CollectedAt time.Time `json:"collectedAt"`
}
