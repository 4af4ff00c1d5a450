package contractfield

import (
	"regexp"
	"strings"
)

// Field status and type domains.
const (
	StatusRequired   = "required"
	StatusAdditional = "additional"
)

var FieldStatuses = map[string]bool{
	StatusRequired:   true,
	StatusAdditional: true,
}

var FieldTypes = map[string]bool{
	"text":     true,
	"email":    true,
	"phone":    true,
	"currency": true,
	"number":   true,
	"toggle":   true,
	"date":     true,
}

// BlockedFields are the fixed contract attribute names. A derived field_code
// may never collide with one of them, otherwise a dynamic field could shadow
// a core attribute.
var BlockedFields = map[string]bool{
	"contractor_name": true,
	"periodicity":     true,
	"type":            true,
	"value":           true,
	"effective_date":  true,
	"due_date":        true,
	"contract_status": true,
	"category_id":     true,
	"responsible_id":  true,
	"category":        true,
	"responsible":     true,
	"extra_fields":    true,
	"path":            true,
}

// ContractField is one tenant-defined contract attribute definition.
// field_code is derived from the label and unique per scope.
type ContractField struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	GroupCode   string `gorm:"size:50;not null;uniqueIndex:idx_contract_fields_scope_code" json:"group_code"`
	DealerCode  string `gorm:"size:50;not null;uniqueIndex:idx_contract_fields_scope_code" json:"dealer_code"`
	FieldLabel  string `gorm:"size:120;not null" json:"field_label"`
	FieldCode   string `gorm:"size:120;not null;uniqueIndex:idx_contract_fields_scope_code" json:"field_code"`
	FieldStatus string `gorm:"size:20;not null" json:"field_status"`
	FieldType   string `gorm:"size:20;not null" json:"field_type"`
}

func (ContractField) TableName() string { return "contract_fields" }

// GlobalField is the template set copied into a new tenant's registry by the
// init endpoint. Not tenant scoped.
type GlobalField struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FieldLabel string `gorm:"size:120;not null" json:"field_label"`
	FieldCode  string `gorm:"size:120;not null;uniqueIndex" json:"field_code"`
	FieldType  string `gorm:"size:20;not null" json:"field_type"`
}

func (GlobalField) TableName() string { return "global_fields" }

type Input struct {
	FieldLabel  string `json:"field_label"`
	FieldStatus string `json:"field_status"`
	FieldType   string `json:"field_type"`
}

type StatusUpdate struct {
	FieldStatus string `json:"field_status"`
}

var (
	capsRun  = regexp.MustCompile(`([A-Z]+)`)
	capsWord = regexp.MustCompile(`([A-Z][a-z]+)`)
)

// SnakeCase derives a field code from a label: hyphens become spaces,
// CamelCase and consecutive-caps boundaries are split, words join with
// underscores, lowercased. Deterministic and idempotent.
func SnakeCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = capsRun.ReplaceAllString(s, " $1")
	s = capsWord.ReplaceAllString(s, " $1")
	return strings.ToLower(strings.Join(strings.Fields(s), "_"))
}
