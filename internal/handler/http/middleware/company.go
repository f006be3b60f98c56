package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/jwt"
)

// RequireCompany rejects tokens that are not bound to a company.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := jwt.ClaimsFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if claims.CompanyID == "" {
			response.Forbidden(w, "User is not assigned to a company")
			return
		}

		next.ServeHTTP(w, r)
	})
}
