package utils

import (
	"fmt"
	"net/http"
	"strconv"

	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/exceptions"
)

// SessionFromRequest pulls the session the authentication middleware stored
// on the request context.
func SessionFromRequest(r *http.Request) (*models.Session, error) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("no session in request context"))
	}
	return session, nil
}

// ParseQueryParams reads the common list-endpoint query knobs.
func ParseQueryParams(r *http.Request) *requests.QueryParams {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))

	params := &requests.QueryParams{
		Page:           page,
		PageSize:       pageSize,
		Search:         query.Get("search"),
		Specialization: query.Get("specialization"),
		Day:            query.Get("day"),
		Status:         query.Get("status"),
		Role:           query.Get("role"),
	}
	params.Normalize()
	return params
}

// ClientIP prefers the X-Forwarded-For header set by the reverse proxy.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}
