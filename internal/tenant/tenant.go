package tenant

import (
	"errors"
	"net/http"
)

// Header names that carry the tenant partition key on every scoped request.
const (
	HeaderGroup  = "current-group"
	HeaderDealer = "current-dealer"
)

var ErrMissingScope = errors.New("missing current-group or current-dealer header")

// Scope is the (group, dealer) pair that isolates one organization's data.
// It is a partition key, never an identifier on its own.
type Scope struct {
	GroupCode  string `json:"group_code"`
	DealerCode string `json:"dealer_code"`
}

// FromRequest extracts the tenant scope from the request headers.
func FromRequest(r *http.Request) (Scope, error) {
	s := Scope{
		GroupCode:  r.Header.Get(HeaderGroup),
		DealerCode: r.Header.Get(HeaderDealer),
	}
	if s.GroupCode == "" || s.DealerCode == "" {
		return Scope{}, ErrMissingScope
	}
	return s, nil
}
