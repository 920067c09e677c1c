package httpv1

import (
	"errors"
	"net/http"

	"github.com/Egor213/LogiWatch/internal/controller/http/validators"
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/Egor213/LogiWatch/internal/ingest"
	"github.com/Egor213/LogiWatch/internal/service"
)

var ErrBadRequest = errors.New("malformed request")

type errorMapping struct {
	err    error
	status int
}

// Order matters: the first sentinel found in the chain decides the response.
var errorMappings = []errorMapping{
	{ErrBadRequest, http.StatusBadRequest},
	{service.ErrEmptyPath, http.StatusBadRequest},
	{service.ErrInvalidRules, http.StatusBadRequest},
	{service.ErrInvalidBufferCap, http.StatusBadRequest},
	{domain.ErrInvalidThreshold, http.StatusBadRequest},
	{validators.ErrInvalidSeverity, http.StatusBadRequest},
	{validators.ErrInvalidKind, http.StatusBadRequest},
	{validators.ErrInvalidReadState, http.StatusBadRequest},
	{validators.ErrEmptyURLPrefix, http.StatusBadRequest},
	{service.ErrPathNotFound, http.StatusNotFound},
	{service.ErrAlertNotFound, http.StatusNotFound},
	{service.ErrNoPath, http.StatusConflict},
	{service.ErrAlreadyMonitoring, http.StatusConflict},
	{service.ErrNotMonitoring, http.StatusConflict},
	{ingest.ErrNoValidLogs, http.StatusUnprocessableEntity},
	{service.ErrCannotMarkRead, http.StatusServiceUnavailable},
	{service.ErrCannotSaveSettings, http.StatusServiceUnavailable},
}

// mapError picks the status and the client-facing message for err. Unknown
// errors become a bare 500 so wrapped internals never leak.
func mapError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal error"
}
