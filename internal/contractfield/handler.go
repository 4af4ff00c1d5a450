package contractfield

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

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

// POST /contract_fields
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
	if in.FieldLabel == "" || !FieldStatuses[in.FieldStatus] || !FieldTypes[in.FieldType] {
		utils.RespondError(w, http.StatusBadRequest, "Invalid field definition")
		return
	}
	code := SnakeCase(in.FieldLabel)
	if BlockedFields[code] {
		utils.RespondError(w, http.StatusBadRequest, "Blocked field_code")
		return
	}
	field := ContractField{
		GroupCode:   scope.GroupCode,
		DealerCode:  scope.DealerCode,
		FieldLabel:  in.FieldLabel,
		FieldCode:   code,
		FieldStatus: in.FieldStatus,
		FieldType:   in.FieldType,
	}
	if err := h.Repository.Create(h.DB, &field); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(w, http.StatusBadRequest,
				fmt.Sprintf("Duplicate code for %s", scope.DealerCode))
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Could not create contract field")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, field)
}

// GET /contract_fields
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	fields, err := h.Repository.List(h.DB, scope)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not list contract fields")
		return
	}
	utils.RespondJSON(w, http.StatusOK, fields)
}

// POST /contract_fields/{field_code}
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || !FieldStatuses[in.FieldStatus] {
		utils.RespondError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	fieldCode := mux.Vars(r)["field_code"]
	if _, err := h.Repository.UpdateStatus(h.DB, scope, fieldCode, in.FieldStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Field does not exist")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Could not update contract field")
		return
	}
	utils.SuccessOK(w)
}

// GET /contract_fields/init_group_fields
func (h *Handler) InitGroupFields(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Repository.InitFromGlobal(h.DB, scope); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(w, http.StatusBadRequest, "This group has already been initialized")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Could not initialize contract fields")
		return
	}
	utils.SuccessOK(w)
}
