package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
)

// UintPathParam reads a numeric id from the route pattern.
func UintPathParam(r *http.Request, name string) (uint, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, name+" is required")
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, name+" must be a positive integer")
	}
	return uint(value), nil
}

// BearerToken extracts the token from the Authorization header, with or
// without the Bearer prefix. Absence is not an error here; callers decide.
func BearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
