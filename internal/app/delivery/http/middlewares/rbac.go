package middlewares

import (
	"fmt"
	"net/http"

	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/exceptions"
	"care4u-service/internal/pkg/utils"
)

func (m *Middlewares) requireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
			if !ok || session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in request context")))
				return
			}
			if !allowed[session.Role] {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(fmt.Errorf("role %s not permitted", session.Role)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middlewares) RequireDoctor(next http.Handler) http.Handler {
	return m.requireRole(constvars.RoleDoctor)(next)
}

func (m *Middlewares) RequirePatient(next http.Handler) http.Handler {
	return m.requireRole(constvars.RolePatient)(next)
}

func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return m.requireRole(constvars.RoleAdmin)(next)
}

func (m *Middlewares) RequireDoctorOrAdmin(next http.Handler) http.Handler {
	return m.requireRole(constvars.RoleDoctor, constvars.RoleAdmin)(next)
}
