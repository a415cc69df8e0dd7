// Package validation checks request bodies, query strings and path
// parameters against declarative struct tags before handlers run.
package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/saulo-duarte/vicinato-api/internal/apperr"
)

const invalidInput = "invalid input data"

type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

var (
	validate = newValidator()

	decimalType = reflect.TypeOf(decimal.Decimal{})

	// moneyLimit is the first value a numeric(14,2) column cannot hold.
	moneyLimit = decimal.New(1, 12)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("money", isMoney)
	return v
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// isMoney accepts amounts a numeric(14,2) column stores unchanged: at
// most two decimal places and an absolute value below 10^12. Custom type
// funcs hand validators a float64, so the exact decimal is read back
// from the parent struct.
func isMoney(fl validator.FieldLevel) bool {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}
	field := parent.FieldByName(fl.StructFieldName())
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.Equal(d.Truncate(2)) && d.Abs().LessThan(moneyLimit)
}

// Struct validates v and returns an apperr validation error listing
// every violation.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(apperr.ErrValidation, invalidInput, err)
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return &apperr.Error{Kind: apperr.ErrValidation, Message: invalidInput, Details: details}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " characters"
	case "datetime":
		return "must match the format YYYY-MM-DD"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "money":
		return "must have at most 2 decimal places and be less than " + moneyLimit.String()
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

type bodyKey struct{}
type queryKey struct{}

// Body decodes the JSON body into T, validates it and stores it on the
// request context for BodyFrom.
func Body[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var dto T
		raw, err := io.ReadAll(r.Body)
		if err == nil {
			err = json.Unmarshal(raw, &dto)
		}
		if err != nil {
			apperr.Write(w, &apperr.Error{
				Kind:    apperr.ErrValidation,
				Message: invalidInput,
				Details: []FieldError{{Field: "body", Tag: "json", Message: "must be a valid JSON object"}},
			}, invalidInput)
			return
		}
		if details := quotedNumbers(raw, reflect.TypeOf(dto)); len(details) > 0 {
			apperr.Write(w, &apperr.Error{Kind: apperr.ErrValidation, Message: invalidInput, Details: details}, invalidInput)
			return
		}
		if err := Struct(dto); err != nil {
			apperr.Write(w, err, invalidInput)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), bodyKey{}, dto)))
	})
}

// quotedNumbers reports decimal fields of t that arrived as JSON strings.
// decimal.Decimal accepts "100" as readily as 100; the API does not.
func quotedNumbers(raw []byte, t reflect.Type) []FieldError {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}

	var out []FieldError
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		ft := f.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft != decimalType {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if value, ok := fields[name]; ok && bytes.HasPrefix(bytes.TrimSpace(value), []byte(`"`)) {
			out = append(out, FieldError{Field: name, Tag: "number", Message: "must be a number"})
		}
	}
	return out
}

func BodyFrom[T any](ctx context.Context) (T, bool) {
	dto, ok := ctx.Value(bodyKey{}).(T)
	return dto, ok
}

// Query maps the first value of every query parameter onto the json
// tags of T and validates the result.
func Query[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := map[string]string{}
		for key, vals := range r.URL.Query() {
			if len(vals) > 0 {
				values[key] = vals[0]
			}
		}

		var dto T
		raw, _ := json.Marshal(values)
		if err := json.Unmarshal(raw, &dto); err != nil {
			apperr.Write(w, apperr.Wrap(apperr.ErrValidation, invalidInput, err), invalidInput)
			return
		}
		if err := Struct(dto); err != nil {
			apperr.Write(w, err, invalidInput)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), queryKey{}, dto)))
	})
}

func QueryFrom[T any](ctx context.Context) (T, bool) {
	dto, ok := ctx.Value(queryKey{}).(T)
	return dto, ok
}

// UUIDParam rejects requests whose chi path parameter is not a UUID.
func UUIDParam(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := uuid.Parse(chi.URLParam(r, name)); err != nil {
				apperr.Write(w, &apperr.Error{
					Kind:    apperr.ErrValidation,
					Message: invalidInput,
					Details: []FieldError{{Field: name, Tag: "uuid", Message: "must be a valid UUID"}},
				}, invalidInput)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ParamID returns the already validated UUID path parameter.
func ParamID(r *http.Request, name string) uuid.UUID {
	id, _ := uuid.Parse(chi.URLParam(r, name))
	return id
}
