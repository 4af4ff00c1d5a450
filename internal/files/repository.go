package files

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, f *File) error
	FindByPath(db *gorm.DB, path string) (*File, error)
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, f *File) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) FindByPath(db *gorm.DB, path string) (*File, error) {
	var f File
	err := db.Where("path = ?", path).First(&f).Error
	return &f, err
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&File{}, id).Error
}
