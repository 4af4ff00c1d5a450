package category

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/KromaEnergia/api-contracts/internal/tenant"
	"github.com/KromaEnergia/api-contracts/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /categories
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" {
		utils.RespondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	c := Category{GroupCode: scope.GroupCode, DealerCode: scope.DealerCode, Name: in.Name}
	if err := h.Repository.Create(h.DB, &c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(w, http.StatusBadRequest,
				fmt.Sprintf("Duplicate name for %s", scope.DealerCode))
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Could not create category")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, c)
}

// GET /categories
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	categories, err := h.Repository.List(h.DB, scope)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not list categories")
		return
	}
	utils.RespondJSON(w, http.StatusOK, categories)
}

// PUT /categories/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" {
		utils.RespondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	updated, err := h.Repository.Update(h.DB, scope, uint(id), in.Name)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondError(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			utils.RespondError(w, http.StatusBadRequest,
				fmt.Sprintf("Duplicate name for %s", scope.DealerCode))
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Could not update category")
		}
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}
