package contractfield

import (
	"github.com/KromaEnergia/api-contracts/internal/tenant"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, f *ContractField) error
	List(db *gorm.DB, scope tenant.Scope) ([]ContractField, error)
	ListByCodes(db *gorm.DB, scope tenant.Scope, codes []string) ([]ContractField, error)
	UpdateStatus(db *gorm.DB, scope tenant.Scope, fieldCode, status string) (*ContractField, error)
	InitFromGlobal(db *gorm.DB, scope tenant.Scope) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, f *ContractField) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) List(db *gorm.DB, scope tenant.Scope) ([]ContractField, error) {
	var fields []ContractField
	err := db.Where("group_code = ? AND dealer_code = ?", scope.GroupCode, scope.DealerCode).
		Find(&fields).Error
	return fields, err
}

func (r *repositoryImpl) ListByCodes(db *gorm.DB, scope tenant.Scope, codes []string) ([]ContractField, error) {
	var fields []ContractField
	err := db.Where("group_code = ? AND dealer_code = ? AND field_code IN ?",
		scope.GroupCode, scope.DealerCode, codes).
		Order("field_code").
		Find(&fields).Error
	return fields, err
}

func (r *repositoryImpl) UpdateStatus(db *gorm.DB, scope tenant.Scope, fieldCode, status string) (*ContractField, error) {
	var existing ContractField
	err := db.Where("group_code = ? AND dealer_code = ? AND field_code = ?",
		scope.GroupCode, scope.DealerCode, fieldCode).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	existing.FieldStatus = status
	if err := db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// InitFromGlobal seeds a fresh tenant registry from the global template set,
// forcing every copy to "additional". The guard is all-or-nothing: a tenant
// that already has any definition is rejected.
func (r *repositoryImpl) InitFromGlobal(db *gorm.DB, scope tenant.Scope) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&ContractField{}).
			Where("group_code = ? AND dealer_code = ?", scope.GroupCode, scope.DealerCode).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		var templates []GlobalField
		if err := tx.Find(&templates).Error; err != nil {
			return err
		}
		for _, t := range templates {
			field := ContractField{
				GroupCode:   scope.GroupCode,
				DealerCode:  scope.DealerCode,
				FieldLabel:  t.FieldLabel,
				FieldCode:   t.FieldCode,
				FieldStatus: StatusAdditional,
				FieldType:   t.FieldType,
			}
			if err := tx.Create(&field).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
