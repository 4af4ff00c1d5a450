package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes v as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RespondError writes an error detail envelope with the given status code.
func RespondError(w http.ResponseWriter, status int, detail string) {
	RespondJSON(w, status, map[string]string{"detail": detail})
}

// SuccessOK writes the standard success envelope.
func SuccessOK(w http.ResponseWriter) {
	RespondJSON(w, http.StatusOK, map[string]string{"message": "success"})
}
