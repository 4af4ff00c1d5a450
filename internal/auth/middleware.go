package auth

import (
	"context"
	"net/http"

	"github.com/KromaEnergia/api-contracts/internal/utils"
)

type ctxKey string

const CtxCredentials ctxKey = "credentials"

const HeaderToken = "security-token"

// Middleware checks the security-token header: the signature is verified
// locally, then the session is confirmed against the authorization API.
// Valid credentials are placed on the request context.
func Middleware(secret []byte, api AuthorizationAPI) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			raw := r.Header.Get(HeaderToken)
			if raw == "" {
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}
			claims, err := ParseToken(raw, secret)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}
			resp, err := api.Get("valid_token", r)
			if err != nil || resp.StatusCode != http.StatusOK {
				if resp != nil {
					resp.Body.Close()
				}
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}
			resp.Body.Close()

			creds := Credentials{
				UserID:          claims.UserID,
				UserApplication: claims.UserApplicationID,
				UserName:        claims.Name,
				UserEmail:       claims.Email,
			}
			ctx := context.WithValue(r.Context(), CtxCredentials, creds)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CredentialsFromContext returns the credentials set by Middleware.
func CredentialsFromContext(ctx context.Context) (Credentials, bool) {
	c, ok := ctx.Value(CtxCredentials).(Credentials)
	return c, ok
}
