package responsible

import (
	"github.com/KromaEnergia/api-contracts/internal/tenant"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, r *Responsible) error
	List(db *gorm.DB, scope tenant.Scope) ([]Responsible, error)
	Update(db *gorm.DB, scope tenant.Scope, id uint, name string) (*Responsible, error)
	Exists(db *gorm.DB, scope tenant.Scope, id uint) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (repo *repositoryImpl) Create(db *gorm.DB, r *Responsible) error {
	return db.Create(r).Error
}

func (repo *repositoryImpl) List(db *gorm.DB, scope tenant.Scope) ([]Responsible, error) {
	var responsibles []Responsible
	err := db.Where("group_code = ? AND dealer_code = ?", scope.GroupCode, scope.DealerCode).
		Find(&responsibles).Error
	return responsibles, err
}

func (repo *repositoryImpl) Update(db *gorm.DB, scope tenant.Scope, id uint, name string) (*Responsible, error) {
	var existing Responsible
	if err := db.Where("group_code = ? AND dealer_code = ?", scope.GroupCode, scope.DealerCode).
		First(&existing, id).Error; err != nil {
		return nil, err
	}
	existing.Name = name
	if err := db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (repo *repositoryImpl) Exists(db *gorm.DB, scope tenant.Scope, id uint) (bool, error) {
	var count int64
	err := db.Model(&Responsible{}).
		Where("id = ? AND group_code = ? AND dealer_code = ?", id, scope.GroupCode, scope.DealerCode).
		Count(&count).Error
	return count > 0, err
}
