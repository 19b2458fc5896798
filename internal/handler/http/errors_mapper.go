package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-nexus-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrItemNotFound:     http.StatusNotFound,
	store.ErrInvalidName:      http.StatusBadRequest,
	store.ErrStoreUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
