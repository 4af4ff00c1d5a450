package dashboard

import (
	"errors"
	"time"

	"github.com/KromaEnergia/api-contracts/internal/contract"
	"github.com/KromaEnergia/api-contracts/internal/tenant"
	"gorm.io/gorm"
)

type Repository interface {
	MonthlyRows(db *gorm.DB, scope tenant.Scope, contractType string, periodStart, periodEnd time.Time) ([]Row, error)
	InactiveSummary(db *gorm.DB, scope tenant.Scope) (int, float64, error)
	AnnualRows(db *gorm.DB, scope tenant.Scope, contractType string, year int) ([]AnnualRow, error)
	OldestEffectiveDate(db *gorm.DB, scope tenant.Scope) (*time.Time, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// MonthlyRows selects the contracts whose [effective_date, due_date] window
// overlaps the queried month: effective before the period end (first day of
// the next month) and due on or after the period start. Inactive contracts
// are excluded, and the category/responsible joins are inner, like the
// overview projection.
func (r *repositoryImpl) MonthlyRows(db *gorm.DB, scope tenant.Scope, contractType string, periodStart, periodEnd time.Time) ([]Row, error) {
	var rows []Row
	err := db.Table("contracts").
		Select(`contracts.value, contracts.periodicity,
			categories.name AS category, responsibles.name AS responsible`).
		Joins("INNER JOIN categories ON categories.id = contracts.category_id").
		Joins("INNER JOIN responsibles ON responsibles.id = contracts.responsible_id").
		Where("contracts.group_code = ? AND contracts.dealer_code = ?", scope.GroupCode, scope.DealerCode).
		Where("contracts.type = ?", contractType).
		Where("contracts.contract_status <> ?", contract.StatusInactive).
		Where("contracts.effective_date < ?", periodEnd).
		Where("contracts.due_date >= ?", periodStart).
		Scan(&rows).Error
	return rows, err
}

// InactiveSummary counts the tenant's inactive contracts with no date or
// type filter: a scope-wide summary, independent of the queried period.
func (r *repositoryImpl) InactiveSummary(db *gorm.DB, scope tenant.Scope) (int, float64, error) {
	var summary struct {
		Quantity   int
		TotalValue float64
	}
	err := db.Table("contracts").
		Select("COUNT(*) AS quantity, COALESCE(SUM(value), 0) AS total_value").
		Where("group_code = ? AND dealer_code = ?", scope.GroupCode, scope.DealerCode).
		Where("contract_status = ?", contract.StatusInactive).
		Scan(&summary).Error
	return summary.Quantity, summary.TotalValue, err
}

// AnnualRows selects the active contracts whose effective_date falls inside
// the queried calendar year.
func (r *repositoryImpl) AnnualRows(db *gorm.DB, scope tenant.Scope, contractType string, year int) ([]AnnualRow, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)
	var rows []AnnualRow
	err := db.Table("contracts").
		Select("value, periodicity, effective_date").
		Where("group_code = ? AND dealer_code = ?", scope.GroupCode, scope.DealerCode).
		Where("type = ?", contractType).
		Where("contract_status = ?", contract.StatusActive).
		Where("effective_date >= ? AND effective_date < ?", yearStart, yearEnd).
		Scan(&rows).Error
	return rows, err
}

// OldestEffectiveDate returns the earliest effective_date among the scope's
// active contracts, or nil when there is none.
func (r *repositoryImpl) OldestEffectiveDate(db *gorm.DB, scope tenant.Scope) (*time.Time, error) {
	var c contract.Contract
	err := db.
		Where("group_code = ? AND dealer_code = ?", scope.GroupCode, scope.DealerCode).
		Where("contract_status = ?", contract.StatusActive).
		Order("effective_date").
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c.EffectiveDate, nil
}
