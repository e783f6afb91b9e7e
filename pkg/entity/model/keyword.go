package model

import (
	"kwlab-go-backend/ent"
)

// Keyword is the model entity for the Keyword schema.
type Keyword = ent.Keyword

// KeywordDocCount is the model entity for the KeywordDocCount schema.
type KeywordDocCount = ent.KeywordDocCount

// RelatedKeyword is the normalized provider result for one related keyword.
// AvgMonthlySearch is always the sum of the two search-volume fields,
// never a provider-supplied total.
type RelatedKeyword struct {
	Keyword             string  `json:"keyword"`
	MonthlyPcSearch     int     `json:"monthlyPcSearch"`
	MonthlyMobileSearch int     `json:"monthlyMobileSearch"`
	AvgMonthlySearch    int     `json:"avgMonthlySearch"`
	MonthlyClickPc      float64 `json:"monthlyClickPc"`
	MonthlyClickMobile  float64 `json:"monthlyClickMobile"`
	CtrPc               float64 `json:"ctrPc"`
	CtrMobile           float64 `json:"ctrMobile"`
	AdDepth             int     `json:"adDepth"`
	Competition         string  `json:"competition"`
}

// CreateKeywordInput is the input for manually registering a keyword.
type CreateKeywordInput struct {
	Keyword             string  `json:"keyword"`
	MonthlyPcSearch     int     `json:"monthlyPcSearch"`
	MonthlyMobileSearch int     `json:"monthlyMobileSearch"`
	MonthlyClickPc      float64 `json:"monthlyClickPc"`
	MonthlyClickMobile  float64 `json:"monthlyClickMobile"`
	CtrPc               float64 `json:"ctrPc"`
	CtrMobile           float64 `json:"ctrMobile"`
	AdDepth             int     `json:"adDepth"`
	Competition         string  `json:"competition"`
	Seed                string  `json:"seed"`
}

// ListKeywordsInput filters and sorts the keyword browse view.
type ListKeywordsInput struct {
	Query       string `query:"q"`
	Competition string `query:"competition"`
	MinSearch   int    `query:"minSearch"`
	Seed        string `query:"seed"`
	SortBy      string `query:"sortBy"`  // keyword | avg_monthly_search | created_at
	SortDir     string `query:"sortDir"` // asc | desc
	Offset      int    `query:"offset"`
	Limit       int    `query:"limit"`
}

// KeywordPage is one browse page plus the unfiltered total.
type KeywordPage struct {
	Items []*Keyword `json:"items"`
	Total int        `json:"total"`
}

// KeywordInsights is the dashboard summary of the keyword table.
type KeywordInsights struct {
	TotalKeywords        int            `json:"totalKeywords"`
	CollectedToday       int            `json:"collectedToday"`
	AvgMonthlySearch     float64        `json:"avgMonthlySearch"`
	CompetitionBreakdown map[string]int `json:"competitionBreakdown"`
	TopByVolume          []*Keyword     `json:"topByVolume"`
}
