package staff

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vetcare-app/vetcare-backend/pkg/auth"
)

// RegisterRoutes registers all staff self-service routes on r. Every route needs an access token with the staff role.
func (handler *Handler) RegisterRoutes(r *mux.Router, authentication *auth.AuthenticationMiddleware) {
	s := r.NewRoute().Subrouter()
	s.Use(authentication.Middleware, authentication.RequireRole(auth.RoleStaff))

	s.HandleFunc("/profile", handler.ProfileGet).Methods(http.MethodGet)
	s.HandleFunc("/profile", handler.ProfileUpdate).Methods(http.MethodPut)

	s.HandleFunc("/tasks", handler.TaskList).Methods(http.MethodGet)
	s.HandleFunc("/tasks/{taskId}/complete", handler.TaskComplete).Methods(http.MethodPut)

	s.HandleFunc("/leave-request", handler.LeaveRequestAdd).Methods(http.MethodPost)
	s.HandleFunc("/leave-status", handler.LeaveRequestList).Methods(http.MethodGet)
	s.HandleFunc("/leave-request/{requestId}", handler.LeaveRequestDelete).Methods(http.MethodDelete)
	s.HandleFunc("/leave-balance", handler.LeaveBalanceGet).Methods(http.MethodGet)

	s.HandleFunc("/attendance", handler.AttendanceMark).Methods(http.MethodPost)
	s.HandleFunc("/attendance", handler.AttendanceList).Methods(http.MethodGet)
}
