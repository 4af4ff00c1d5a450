package contract

import (
	"strings"
	"time"

	"github.com/KromaEnergia/api-contracts/internal/contractfield"
	"github.com/KromaEnergia/api-contracts/internal/tenant"
	"gorm.io/gorm"
)

// OverviewFilter narrows the overview query. Zero fields are skipped.
type OverviewFilter struct {
	Scope     *tenant.Scope
	ID        uint
	NameQuery string    // case-insensitive substring on contractor_name
	Status    string    // exact contract_status
	DueBefore time.Time // due_date strictly before
}

type Repository interface {
	Create(db *gorm.DB, c *Contract) error
	FindByID(db *gorm.DB, id uint) (*Contract, error)
	Save(db *gorm.DB, c *Contract) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Overview(db *gorm.DB, f OverviewFilter) ([]Overview, error)
	ResolveExtraFields(db *gorm.DB, c *Contract) ([]FieldValueOut, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, c *Contract) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Contract, error) {
	var c Contract
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) Save(db *gorm.DB, c *Contract) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) (int64, error) {
	res := db.Delete(&Contract{}, id)
	return res.RowsAffected, res.Error
}

// Overview joins each contract against the category and responsible
// collections to resolve their names. The joins are inner: a contract whose
// reference no longer exists is silently excluded from the result.
func (r *repositoryImpl) Overview(db *gorm.DB, f OverviewFilter) ([]Overview, error) {
	q := db.Table("contracts").
		Select(`contracts.id, contracts.group_code, contracts.dealer_code,
			contracts.contractor_name, categories.name AS category,
			contracts.periodicity, contracts.type, contracts.value,
			contracts.effective_date, contracts.due_date,
			responsibles.name AS responsible, contracts.contract_status`).
		Joins("INNER JOIN categories ON categories.id = contracts.category_id").
		Joins("INNER JOIN responsibles ON responsibles.id = contracts.responsible_id")
	if f.Scope != nil {
		q = q.Where("contracts.group_code = ? AND contracts.dealer_code = ?",
			f.Scope.GroupCode, f.Scope.DealerCode)
	}
	if f.ID != 0 {
		q = q.Where("contracts.id = ?", f.ID)
	}
	if f.NameQuery != "" {
		q = q.Where("LOWER(contracts.contractor_name) LIKE ?",
			"%"+strings.ToLower(f.NameQuery)+"%")
	}
	if f.Status != "" {
		q = q.Where("contracts.contract_status = ?", f.Status)
	}
	if !f.DueBefore.IsZero() {
		q = q.Where("contracts.due_date < ?", f.DueBefore)
	}
	var overviews []Overview
	err := q.Order("contracts.id").Scan(&overviews).Error
	return overviews, err
}

// ResolveExtraFields reconstructs the dynamic keys of one contract into a
// typed list by joining against the field registry of the same scope. The
// registry is read at call time, so label or status edits show up
// immediately on detail views.
func (r *repositoryImpl) ResolveExtraFields(db *gorm.DB, c *Contract) ([]FieldValueOut, error) {
	if len(c.ExtraFields) == 0 {
		return []FieldValueOut{}, nil
	}
	codes := make([]string, 0, len(c.ExtraFields))
	for code := range c.ExtraFields {
		codes = append(codes, code)
	}
	scope := tenant.Scope{GroupCode: c.GroupCode, DealerCode: c.DealerCode}
	defs, err := contractfield.NewRepository().ListByCodes(db, scope, codes)
	if err != nil {
		return nil, err
	}
	return resolveFieldValues(defs, c.ExtraFields), nil
}
