package contract

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/KromaEnergia/api-contracts/internal/contractfield"
)

// FieldValueIn is one submitted dynamic field: the target field_code plus a
// payload discriminated by the declared field_type.
type FieldValueIn struct {
	FieldCode string            `json:"field_code"`
	Details   FieldValueDetails `json:"details"`
}

type FieldValueDetails struct {
	FieldType  string          `json:"field_type"`
	FieldValue json.RawMessage `json:"field_value"`
}

// Resolve checks the payload against the value kind of the declared type and
// returns the normalized value: text/email carry strings, number/phone
// integers, toggle booleans, date timestamps. Anything else is rejected
// before assembly.
func (d FieldValueDetails) Resolve() (interface{}, error) {
	switch d.FieldType {
	case "text", "email":
		var s string
		if err := json.Unmarshal(d.FieldValue, &s); err != nil {
			return nil, fmt.Errorf("expected a string value for type %q", d.FieldType)
		}
		return s, nil
	case "number", "phone":
		// int64 rejects quoted strings and fractional numbers alike
		var i int64
		if err := json.Unmarshal(d.FieldValue, &i); err != nil {
			return nil, fmt.Errorf("expected an integer value for type %q", d.FieldType)
		}
		return i, nil
	case "toggle":
		var b bool
		if err := json.Unmarshal(d.FieldValue, &b); err != nil {
			return nil, fmt.Errorf("expected a boolean value for type %q", d.FieldType)
		}
		return b, nil
	case "date":
		var t time.Time
		if err := json.Unmarshal(d.FieldValue, &t); err != nil {
			return nil, fmt.Errorf("expected a date value for type %q", d.FieldType)
		}
		return t.Format(time.RFC3339), nil
	default:
		return nil, fmt.Errorf("unsupported field_type %q", d.FieldType)
	}
}

// Input is the create/update payload: fixed attributes plus the dynamic
// field values. Updates replace fixed and dynamic fields wholesale.
type Input struct {
	ContractorName string         `json:"contractor_name"`
	Periodicity    string         `json:"periodicity"`
	Type           string         `json:"type"`
	Value          float64        `json:"value"`
	EffectiveDate  time.Time      `json:"effective_date"`
	ContractStatus string         `json:"contract_status"`
	CategoryID     uint           `json:"category_id"`
	ResponsibleID  uint           `json:"responsible_id"`
	ExtraFields    []FieldValueIn `json:"extra_fields"`
}

func (in Input) Validate() error {
	if in.ContractorName == "" {
		return fmt.Errorf("contractor_name is required")
	}
	if _, ok := PeriodicityMonths[in.Periodicity]; !ok {
		return fmt.Errorf("invalid periodicity %q", in.Periodicity)
	}
	if !Types[in.Type] {
		return fmt.Errorf("invalid type %q", in.Type)
	}
	if !Statuses[in.ContractStatus] {
		return fmt.Errorf("invalid contract_status %q", in.ContractStatus)
	}
	if in.Value < 0 {
		return fmt.Errorf("value must not be negative")
	}
	if in.EffectiveDate.IsZero() {
		return fmt.Errorf("effective_date is required")
	}
	return nil
}

// Overview is the denormalized listing projection: fixed attributes plus
// the resolved category and responsible names, no dynamic fields.
type Overview struct {
	ID             uint      `json:"id"`
	GroupCode      string    `json:"group_code"`
	DealerCode     string    `json:"dealer_code"`
	ContractorName string    `json:"contractor_name"`
	Category       string    `json:"category"`
	Periodicity    string    `json:"periodicity"`
	Type           string    `json:"type"`
	Value          float64   `json:"value"`
	EffectiveDate  time.Time `json:"effective_date"`
	DueDate        time.Time `json:"due_date"`
	Responsible    string    `json:"responsible"`
	ContractStatus string    `json:"contract_status"`
}

// FieldValueOut is one dynamic field reconstructed through the registry at
// read time: definition metadata as it stands now, plus the stored value.
type FieldValueOut struct {
	FieldLabel  string      `json:"field_label"`
	FieldStatus string      `json:"field_status"`
	FieldType   string      `json:"field_type"`
	FieldCode   string      `json:"field_code"`
	FieldValue  interface{} `json:"field_value"`
}

type Details struct {
	Overview
	ExtraFields []FieldValueOut `json:"extra_fields"`
}

// resolveFieldValues joins the stored dynamic keys back against the field
// definitions. A key without a live definition is dropped, matching the
// inner-join read path: deleting a referenced definition silently hides the
// value from detail views.
func resolveFieldValues(defs []contractfield.ContractField, extras map[string]interface{}) []FieldValueOut {
	out := make([]FieldValueOut, 0, len(defs))
	for _, def := range defs {
		value, ok := extras[def.FieldCode]
		if !ok {
			continue
		}
		out = append(out, FieldValueOut{
			FieldLabel:  def.FieldLabel,
			FieldStatus: def.FieldStatus,
			FieldType:   def.FieldType,
			FieldCode:   def.FieldCode,
			FieldValue:  value,
		})
	}
	return out
}
