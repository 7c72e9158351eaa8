package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/platform/obs"

	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps domain error kinds to HTTP statuses.
// Unclassified errors are logged and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		invalid    *domain.InvalidPackageError
		overweight *domain.OverweightPackageError
		unpaid     *domain.UnpaidPackagesError
		missing    *domain.MissingCoordinateError
	)

	switch {
	case errors.As(err, &invalid), errors.As(err, &overweight),
		errors.Is(err, domain.ErrUnknownStrategy), errors.Is(err, domain.ErrInvalidCapacity):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPackageNotFound), errors.Is(err, domain.ErrTruckNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.As(err, &unpaid):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.As(err, &missing):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Error().Err(err).Str("req_id", obs.RequestID(r.Context())).Str("op", op).Msg("request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads exactly one JSON object and rejects unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

func truckNumber(r *http.Request) (int, error) {
	raw := r.PathValue("n")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("truck number must be a positive integer, got %q", raw)
	}
	return n, nil
}
