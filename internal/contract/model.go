package contract

import (
	"time"

	"gorm.io/datatypes"
)

// Periodicity controls the due-date step.
const (
	PeriodicityMonthly    = "monthly"
	PeriodicityBimonthly  = "bimonthly"
	PeriodicityQuarterly  = "quarterly"
	PeriodicityBiannually = "biannually"
	PeriodicityAnnually   = "annually"
)

// PeriodicityMonths maps each periodicity to its step in months.
var PeriodicityMonths = map[string]int{
	PeriodicityMonthly:    1,
	PeriodicityBimonthly:  2,
	PeriodicityQuarterly:  3,
	PeriodicityBiannually: 6,
	PeriodicityAnnually:   12,
}

const (
	TypeLiability = "liability"
	TypeRevenue   = "revenue"
)

var Types = map[string]bool{
	TypeLiability: true,
	TypeRevenue:   true,
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var Statuses = map[string]bool{
	StatusActive:   true,
	StatusInactive: true,
}

// Contract is the flattened storage document: fixed columns plus an open
// JSONB map of tenant-defined extra fields keyed by field_code. due_date is
// stored and recomputed whenever effective_date or periodicity changes, so
// the dashboard and alert queries can range over it.
type Contract struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	GroupCode      string            `gorm:"size:50;not null;index:idx_contracts_scope" json:"group_code"`
	DealerCode     string            `gorm:"size:50;not null;index:idx_contracts_scope" json:"dealer_code"`
	ContractorName string            `gorm:"size:200;not null" json:"contractor_name"`
	Periodicity    string            `gorm:"size:20;not null" json:"periodicity"`
	Type           string            `gorm:"size:20;not null" json:"type"`
	Value          float64           `gorm:"not null" json:"value"`
	EffectiveDate  time.Time         `gorm:"not null" json:"effective_date"`
	DueDate        time.Time         `gorm:"not null;index" json:"due_date"`
	ContractStatus string            `gorm:"size:20;not null" json:"contract_status"`
	CategoryID     uint              `gorm:"not null;index" json:"category_id"`
	ResponsibleID  uint              `gorm:"not null;index" json:"responsible_id"`
	Path           string            `gorm:"size:300" json:"path,omitempty"`
	ExtraFields    datatypes.JSONMap `gorm:"type:jsonb" json:"extra_fields,omitempty"`
}

func (Contract) TableName() string { return "contracts" }

// DueDateFor advances the effective date by one periodicity step.
func DueDateFor(effectiveDate time.Time, periodicity string) time.Time {
	return effectiveDate.AddDate(0, PeriodicityMonths[periodicity], 0)
}
