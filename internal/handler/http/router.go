package http

import (
	"log/slog"

	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/employee"
	"github.com/cmlabs-hris/hris-mobile-api/internal/domain/user"
	"github.com/cmlabs-hris/hris-mobile-api/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
}

type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Employee     EmployeeHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	Expense      ExpenseHandler
	Document     DocumentHandler
	Event        EventHandler
	Announcement AnnouncementHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, employeeService employee.EmployeeService, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))
			r.Use(middleware.RequireCompany)

			// Authorization for office changes lives in the directory service.
			r.Put("/employees/{id}/office", h.Employee.UpdateOffice)

			// Self-service routes act on the caller's own employee record.
			r.Group(func(r chi.Router) {
				r.Use(middleware.ResolveActor(employeeService))

				r.Get("/employees/me", h.Employee.GetProfile)

				r.Route("/attendance", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).
						Post("/check", h.Attendance.Check)
					r.Get("/logs", h.Attendance.GetTodayLog)
					r.Get("/status", h.Attendance.GetStatus)
					r.Get("/my", h.Attendance.GetMyAttendance)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Get("/", h.Leave.ListMyLeaves)
					r.Get("/types", h.Leave.ListLeaveTypes)
					r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).
						Post("/", h.Leave.CreateLeave)
				})

				r.Route("/payslips", func(r chi.Router) {
					r.Get("/", h.Payroll.ListMyPayslips)
					r.Get("/dashboard", h.Payroll.GetDashboard)
					r.Get("/{id}", h.Payroll.GetPayslip)
				})

				r.Route("/expenses", func(r chi.Router) {
					r.Get("/", h.Expense.ListMyExpenses)
					r.With(middleware.RequirePermission(user.PermissionExpenseCreate)).
						Post("/", h.Expense.CreateExpense)
				})

				r.Get("/documents", h.Document.ListMyDocuments)
				r.Get("/events/upcoming", h.Event.ListUpcomingEvents)
				r.Get("/announcements", h.Announcement.ListMyAnnouncements)
			})
		})
	})

	return r
}
