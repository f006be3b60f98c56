package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/response"
)

// actorFromRequest returns the employee resolved by middleware.ResolveActor.
func actorFromRequest(w http.ResponseWriter, r *http.Request) (employee.Employee, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return employee.Employee{}, false
	}
	return actor, true
}

// queryInt reads a positive integer query parameter, returning 0 when absent or invalid.
func queryInt(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
