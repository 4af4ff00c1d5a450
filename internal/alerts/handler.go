package alerts

import (
	"net/http"
	"strconv"
	"time"

	"github.com/KromaEnergia/api-contracts/internal/contract"
	"github.com/KromaEnergia/api-contracts/internal/tenant"
	"github.com/KromaEnergia/api-contracts/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB        *gorm.DB
	Contracts contract.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Contracts: contract.NewRepository()}
}

// GET /alerts?days_filter=N
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	daysFilter, err := strconv.Atoi(r.URL.Query().Get("days_filter"))
	if err != nil || daysFilter <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "Invalid filter")
		return
	}
	now := time.Now().UTC()
	overviews, err := h.Contracts.Overview(h.DB, contract.OverviewFilter{
		Scope:     &scope,
		Status:    contract.StatusActive,
		DueBefore: Deadline(now, daysFilter),
	})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not list alerts")
		return
	}
	utils.RespondJSON(w, http.StatusOK, Annotate(overviews, now))
}
