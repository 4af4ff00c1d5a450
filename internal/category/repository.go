package category

import (
	"github.com/KromaEnergia/api-contracts/internal/tenant"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, c *Category) error
	List(db *gorm.DB, scope tenant.Scope) ([]Category, error)
	Update(db *gorm.DB, scope tenant.Scope, id uint, name string) (*Category, error)
	Exists(db *gorm.DB, scope tenant.Scope, id uint) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, c *Category) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) List(db *gorm.DB, scope tenant.Scope) ([]Category, error) {
	var categories []Category
	err := db.Where("group_code = ? AND dealer_code = ?", scope.GroupCode, scope.DealerCode).
		Find(&categories).Error
	return categories, err
}

func (r *repositoryImpl) Update(db *gorm.DB, scope tenant.Scope, id uint, name string) (*Category, error) {
	var existing Category
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

func (r *repositoryImpl) Exists(db *gorm.DB, scope tenant.Scope, id uint) (bool, error) {
	var count int64
	err := db.Model(&Category{}).
		Where("id = ? AND group_code = ? AND dealer_code = ?", id, scope.GroupCode, scope.DealerCode).
		Count(&count).Error
	return count > 0, err
}
