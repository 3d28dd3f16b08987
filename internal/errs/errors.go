package errs

import (
	"errors"
	"net/http"

	"vpapic.dev/internal/catalog"
	"vpapic.dev/internal/services"
)

var ErrUnauthorized = errors.New("unauthorized")

var ErrStatusMap = map[error]int{
	catalog.ErrNotFound:         http.StatusNotFound,
	services.ErrImageNotFound:   http.StatusNotFound,
	services.ErrSessionNotFound: http.StatusNotFound,
	services.ErrIndexOutOfRange: http.StatusBadRequest,
	ErrUnauthorized:             http.StatusUnauthorized,
}

// Status returns the HTTP status for err and the message safe to show to
// clients. Unknown errors are internal.
func Status(err error) (int, string) {
	for known, code := range ErrStatusMap {
		if errors.Is(err, known) {
			return code, known.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
