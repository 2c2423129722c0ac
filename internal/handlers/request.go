package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// maxBodySize предельный размер тела запроса
const maxBodySize = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Имена полей в ошибках совпадают с JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode читает JSON-тело и проверяет теги validate.
// Ошибка уже записана в ответ, когда decode возвращает false.
func (rs responder) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		rs.message(w, http.StatusBadRequest, "Bad Request")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			rs.json(w, http.StatusBadRequest, errorResponse{
				Error:  "invalid request",
				Fields: fieldErrors(ve),
			})
			return false
		}
		rs.message(w, http.StatusBadRequest, "Bad Request")
		return false
	}
	return true
}

func fieldErrors(ve validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		key := strings.SplitN(fe.Namespace(), ".", 2)
		field := fe.Field()
		if len(key) == 2 {
			field = key[1]
		}
		out[field] = messageForTag(fe.Tag(), fe.Param())
	}
	return out
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + param + " elements"
	case "max":
		return "must be at most " + param + " characters"
	case "gt":
		return "must be greater than " + param
	case "oneof":
		return "must be one of: " + param
	default:
		return "is invalid"
	}
}

// idParam читает положительный идентификатор из пути
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// timeQuery читает необязательную дату RFC3339 из строки запроса
func timeQuery(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: expected RFC3339 date", name)
	}
	return &t, nil
}

// int64Query читает необязательный положительный идентификатор из строки запроса
func int64Query(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}
