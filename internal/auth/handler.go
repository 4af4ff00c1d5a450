package auth

import (
	"io"
	"net/http"

	"github.com/KromaEnergia/api-contracts/internal/utils"
)

// Handler exposes the authentication pass-through endpoints. The session
// itself lives on the authorization API; we only proxy its answers.
type Handler struct {
	API             AuthorizationAPI
	ApplicationCode string
}

func NewHandler(api AuthorizationAPI, applicationCode string) *Handler {
	return &Handler{API: api, ApplicationCode: applicationCode}
}

// GET /one_authentication
func (h *Handler) OneAuthentication(w http.ResponseWriter, r *http.Request) {
	resp, err := h.API.Post("one_authentication", map[string]string{
		"application_code": h.ApplicationCode,
	}, r)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "The authorization service responded with an error")
		return
	}
	defer resp.Body.Close()
	proxyResponse(w, resp)
}

// GET /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	resp, err := h.API.Get("logout", r)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "The authorization service responded with an error")
		return
	}
	defer resp.Body.Close()
	proxyResponse(w, resp)
}

// GET /is_authorized. Reaching here means Middleware accepted the token.
func (h *Handler) IsAuthorized(w http.ResponseWriter, r *http.Request) {
	utils.SuccessOK(w)
}

func proxyResponse(w http.ResponseWriter, resp *http.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}
