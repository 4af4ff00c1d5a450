package dashboard

import "time"

// Row is one active contract joined against its category and responsible,
// the unit the monthly aggregations fold over.
type Row struct {
	Value       float64
	Periodicity string
	Category    string
	Responsible string
}

// AnnualRow is the slimmer projection the annual aggregations need.
type AnnualRow struct {
	Value         float64
	Periodicity   string
	EffectiveDate time.Time
}

// Group carries the statistics of one aggregation bucket.
type Group struct {
	Quantity     int     `json:"quantity"`
	TotalValue   float64 `json:"total_value"`
	AverageValue float64 `json:"average_value"`
}

// NamedGroup is a ranked bucket keyed by category or responsible name.
type NamedGroup struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	TotalValue   float64 `json:"total_value"`
	AverageValue float64 `json:"average_value"`
}

type MonthlyDashboard struct {
	Quantity           int              `json:"quantity"`
	TotalValue         float64          `json:"total_value"`
	AverageValue       float64          `json:"average_value"`
	ByCategory         []NamedGroup     `json:"by_category"`
	ByResponsible      []NamedGroup     `json:"by_responsible"`
	ByPeriodicity      map[string]Group `json:"by_periodicity"`
	InactiveQuantity   int              `json:"inactive_quantity"`
	InactiveTotalValue float64          `json:"inactive_total_value"`
}

type Bucket struct {
	Quantity   int     `json:"quantity"`
	TotalValue float64 `json:"total_value"`
}

type MonthBucket struct {
	Month      int     `json:"month"`
	Quantity   int     `json:"quantity"`
	TotalValue float64 `json:"total_value"`
}

type RangeBucket struct {
	Range    string `json:"range"`
	Quantity int    `json:"quantity"`
}

type AnnualDashboard struct {
	ByMonth       []MonthBucket     `json:"by_month"`
	ByPeriodicity map[string]Bucket `json:"by_periodicity"`
	ByValueRange  []RangeBucket     `json:"by_value_range"`
}

type OldestDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}
