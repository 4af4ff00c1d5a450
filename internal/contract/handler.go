package contract

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/KromaEnergia/api-contracts/internal/category"
	"github.com/KromaEnergia/api-contracts/internal/responsible"
	"github.com/KromaEnergia/api-contracts/internal/tenant"
	"github.com/KromaEnergia/api-contracts/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB           *gorm.DB
	Repository   Repository
	Categories   category.Repository
	Responsibles responsible.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Repository:   NewRepository(),
		Categories:   category.NewRepository(),
		Responsibles: responsible.NewRepository(),
	}
}

// validateReferences checks that category_id and responsible_id point at
// records of the same tenant scope.
func (h *Handler) validateReferences(w http.ResponseWriter, scope tenant.Scope, in Input) bool {
	ok, err := h.Categories.Exists(h.DB, scope, in.CategoryID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not verify category")
		return false
	}
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "Invalid category")
		return false
	}
	ok, err = h.Responsibles.Exists(h.DB, scope, in.ResponsibleID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not verify responsible")
		return false
	}
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "Invalid responsible")
		return false
	}
	return true
}

// POST /contracts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	if err := in.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.validateReferences(w, scope, in) {
		return
	}
	c, err := Build(scope, in)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Repository.Create(h.DB, c); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not create contract")
		return
	}
	overviews, err := h.Repository.Overview(h.DB, OverviewFilter{ID: c.ID})
	if err != nil || len(overviews) == 0 {
		utils.RespondError(w, http.StatusInternalServerError, "Could not load created contract")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, overviews[0])
}

// GET /contracts
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	overviews, err := h.Repository.Overview(h.DB, OverviewFilter{Scope: &scope})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not list contracts")
		return
	}
	utils.RespondJSON(w, http.StatusOK, overviews)
}

// GET /contracts/search/{query}
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	query := mux.Vars(r)["query"]
	overviews, err := h.Repository.Overview(h.DB, OverviewFilter{Scope: &scope, NameQuery: query})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not search contracts")
		return
	}
	utils.RespondJSON(w, http.StatusOK, overviews)
}

// GET /contracts/{id}
func (h *Handler) GetDetails(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	c, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Contract not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Could not load contract")
		return
	}
	extraFields, err := h.Repository.ResolveExtraFields(h.DB, c)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not resolve contract fields")
		return
	}
	overviews, err := h.Repository.Overview(h.DB, OverviewFilter{ID: c.ID})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not load contract")
		return
	}
	if len(overviews) == 0 {
		utils.RespondError(w, http.StatusNotFound, "Contract not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, Details{Overview: overviews[0], ExtraFields: extraFields})
}

// PUT /contracts/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	existing, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Contract not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Could not load contract")
		return
	}
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	if err := in.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	scope := tenant.Scope{GroupCode: existing.GroupCode, DealerCode: existing.DealerCode}
	if !h.validateReferences(w, scope, in) {
		return
	}
	updated, err := Build(scope, in)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	// fixed and dynamic fields are replaced wholesale; identity and the
	// linked file path survive the update
	updated.ID = existing.ID
	updated.Path = existing.Path
	if err := h.Repository.Save(h.DB, updated); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not update contract")
		return
	}
	overviews, err := h.Repository.Overview(h.DB, OverviewFilter{ID: updated.ID})
	if err != nil || len(overviews) == 0 {
		utils.RespondError(w, http.StatusInternalServerError, "Could not load updated contract")
		return
	}
	utils.RespondJSON(w, http.StatusOK, overviews[0])
}

// DELETE /contracts/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	deleted, err := h.Repository.Delete(h.DB, uint(id))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not delete contract")
		return
	}
	if deleted == 0 {
		utils.RespondError(w, http.StatusNotFound, "Contract not found")
		return
	}
	utils.SuccessOK(w)
}
