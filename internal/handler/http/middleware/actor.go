package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/jwt"
)

type actorKey struct{}

// ResolveActor loads the employee linked to the token's user and stores it on the
// request context for handlers to pass on explicitly.
func ResolveActor(employeeService employee.EmployeeService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := jwt.ClaimsFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			actor, err := employeeService.ResolveActor(r.Context(), claims.UserID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext returns the employee stored by ResolveActor.
func ActorFromContext(ctx context.Context) (employee.Employee, bool) {
	actor, ok := ctx.Value(actorKey{}).(employee.Employee)
	return actor, ok
}
