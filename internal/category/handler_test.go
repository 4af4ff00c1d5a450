package category

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KromaEnergia/api-contracts/internal/tenant"
	"github.com/gorilla/mux"
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
	require.NoError(t, db.AutoMigrate(&Category{}))
	return db
}

func newRouter(db *gorm.DB) *mux.Router {
	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/categories", h.Create).Methods("POST")
	r.HandleFunc("/categories", h.List).Methods("GET")
	r.HandleFunc("/categories/{id}", h.Update).Methods("PUT")
	return r
}

func scopedRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set(tenant.HeaderGroup, "g1")
	r.Header.Set(tenant.HeaderDealer, "d1")
	return r
}

func TestCreateCategory(t *testing.T) {
	router := newRouter(setupDB(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, scopedRequest(http.MethodPost, "/categories", `{"name":"Software"}`))

	require.Equal(t, http.StatusCreated, w.Code)
	var created Category
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Software", created.Name)
	assert.Equal(t, "d1", created.DealerCode)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	router := newRouter(setupDB(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, scopedRequest(http.MethodPost, "/categories", `{"name":"Software"}`))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, scopedRequest(http.MethodPost, "/categories", `{"name":"Software"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Duplicate name for d1")
}

func TestCreateCategoryMissingScope(t *testing.T) {
	router := newRouter(setupDB(t))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Software"}`))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCategoriesIsTenantScoped(t *testing.T) {
	db := setupDB(t)
	router := newRouter(db)
	require.NoError(t, db.Create(&Category{GroupCode: "g1", DealerCode: "d1", Name: "Software"}).Error)
	require.NoError(t, db.Create(&Category{GroupCode: "g1", DealerCode: "d2", Name: "Hardware"}).Error)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, scopedRequest(http.MethodGet, "/categories", ""))

	require.Equal(t, http.StatusOK, w.Code)
	var listed []Category
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Software", listed[0].Name)
}

func TestUpdateCategory(t *testing.T) {
	db := setupDB(t)
	router := newRouter(db)
	existing := Category{GroupCode: "g1", DealerCode: "d1", Name: "Software"}
	require.NoError(t, db.Create(&existing).Error)

	w := httptest.NewRecorder()
	target := fmt.Sprintf("/categories/%d", existing.ID)
	router.ServeHTTP(w, scopedRequest(http.MethodPut, target, `{"name":"Licenses"}`))

	require.Equal(t, http.StatusOK, w.Code)
	var updated Category
	require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
	assert.Equal(t, "Licenses", updated.Name)
}

func TestUpdateCategoryOtherTenant(t *testing.T) {
	db := setupDB(t)
	router := newRouter(db)
	other := Category{GroupCode: "g2", DealerCode: "d9", Name: "Software"}
	require.NoError(t, db.Create(&other).Error)

	w := httptest.NewRecorder()
	target := fmt.Sprintf("/categories/%d", other.ID)
	router.ServeHTTP(w, scopedRequest(http.MethodPut, target, `{"name":"Hijacked"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	router := newRouter(setupDB(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, scopedRequest(http.MethodPut, "/categories/999", `{"name":"Licenses"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
