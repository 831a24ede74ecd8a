package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-cms-backend/errs"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errs.NewInvalidJSONError(err)
	}
	return nil
}

// parseID reads the {id} path parameter, which must be a positive integer.
func parseID(r *http.Request, entity string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewInvalidIDError(entity)
	}
	return uint(id), nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

type requiredFields struct {
	missing []string
}

func (f *requiredFields) check(name string, value *string) {
	if value == nil || *value == "" {
		f.missing = append(f.missing, name)
	}
}

func (f *requiredFields) err() error {
	if len(f.missing) == 0 {
		return nil
	}
	return errs.NewMissingRequiredFieldError(f.missing...)
}

// checkEnum accepts an absent value.
func checkEnum(field string, value *string, allowed []string) error {
	if value == nil || slices.Contains(allowed, *value) {
		return nil
	}
	return errs.NewInvalidFieldError(field, "must be one of "+strings.Join(allowed, ", "))
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// assign overwrites *dst only when the payload carried the field.
func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// assignOptional is assign for nullable columns.
func assignOptional[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
