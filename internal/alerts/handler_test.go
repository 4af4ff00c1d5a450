package alerts

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KromaEnergia/api-contracts/internal/category"
	"github.com/KromaEnergia/api-contracts/internal/contract"
	"github.com/KromaEnergia/api-contracts/internal/responsible"
	"github.com/KromaEnergia/api-contracts/internal/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&category.Category{},
		&responsible.Responsible{},
		&contract.Contract{},
	))
	return db
}

func alertsRequest(target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set(tenant.HeaderGroup, "g1")
	r.Header.Set(tenant.HeaderDealer, "d1")
	return r
}

func TestListRejectsInvalidDaysFilter(t *testing.T) {
	h := NewHandler(setupDB(t))

	targets := []string{
		"/alerts?days_filter=0",
		"/alerts?days_filter=-3",
		"/alerts?days_filter=soon",
		"/alerts",
	}
	for _, target := range targets {
		w := httptest.NewRecorder()
		h.List(w, alertsRequest(target))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "Invalid filter", target)
	}
}

func TestListAcceptsValidDaysFilter(t *testing.T) {
	h := NewHandler(setupDB(t))

	w := httptest.NewRecorder()
	h.List(w, alertsRequest("/alerts?days_filter=30"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
