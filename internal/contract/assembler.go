package contract

import (
	"fmt"

	"github.com/KromaEnergia/api-contracts/internal/contractfield"
	"github.com/KromaEnergia/api-contracts/internal/tenant"
	"gorm.io/datatypes"
)

// Build assembles the storage document for an input: tenant scope plus fixed
// attributes plus each extra field flattened into the open map under its
// field_code. Values are normalized through Resolve; a code colliding with a
// fixed attribute name is rejected so the core columns cannot be shadowed.
func Build(scope tenant.Scope, in Input) (*Contract, error) {
	extras := datatypes.JSONMap{}
	for _, f := range in.ExtraFields {
		if f.FieldCode == "" {
			return nil, fmt.Errorf("extra field with empty field_code")
		}
		if contractfield.BlockedFields[f.FieldCode] {
			return nil, fmt.Errorf("blocked field_code %q", f.FieldCode)
		}
		value, err := f.Details.Resolve()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.FieldCode, err)
		}
		extras[f.FieldCode] = value
	}
	return &Contract{
		GroupCode:      scope.GroupCode,
		DealerCode:     scope.DealerCode,
		ContractorName: in.ContractorName,
		Periodicity:    in.Periodicity,
		Type:           in.Type,
		Value:          in.Value,
		EffectiveDate:  in.EffectiveDate,
		DueDate:        DueDateFor(in.EffectiveDate, in.Periodicity),
		ContractStatus: in.ContractStatus,
		CategoryID:     in.CategoryID,
		ResponsibleID:  in.ResponsibleID,
		ExtraFields:    extras,
	}, nil
}
