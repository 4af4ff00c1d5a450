package dashboard

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
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /dashboard/monthly?month=M&year=Y&type=T
func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	month, errM := strconv.Atoi(r.URL.Query().Get("month"))
	year, errY := strconv.Atoi(r.URL.Query().Get("year"))
	contractType := r.URL.Query().Get("type")
	if errM != nil || errY != nil || month < 1 || month > 12 || year < 1 || year > 9999 || !contract.Types[contractType] {
		utils.RespondError(w, http.StatusBadRequest, "Invalid filter")
		return
	}
	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	rows, err := h.Repository.MonthlyRows(h.DB, scope, contractType, periodStart, periodEnd)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not build dashboard")
		return
	}
	inactiveQuantity, inactiveTotal, err := h.Repository.InactiveSummary(h.DB, scope)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not build dashboard")
		return
	}
	utils.RespondJSON(w, http.StatusOK, BuildMonthly(rows, inactiveQuantity, inactiveTotal))
}

// GET /dashboard/annual?year=Y&type=T
func (h *Handler) Annual(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	year, errY := strconv.Atoi(r.URL.Query().Get("year"))
	contractType := r.URL.Query().Get("type")
	if errY != nil || year < 1 || year > 9999 || !contract.Types[contractType] {
		utils.RespondError(w, http.StatusBadRequest, "Invalid filter")
		return
	}
	rows, err := h.Repository.AnnualRows(h.DB, scope, contractType, year)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not build dashboard")
		return
	}
	utils.RespondJSON(w, http.StatusOK, BuildAnnual(rows))
}

// GET /dashboard/monthly/get_oldest
func (h *Handler) GetOldest(w http.ResponseWriter, r *http.Request) {
	scope, err := tenant.FromRequest(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	oldest, err := h.Repository.OldestEffectiveDate(h.DB, scope)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Could not query contracts")
		return
	}
	if oldest == nil {
		utils.RespondError(w, http.StatusNotFound, "No active contracts found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, OldestDate{Year: oldest.Year(), Month: int(oldest.Month())})
}
