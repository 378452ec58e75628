package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// decodeJSON reads a JSON body into dst and runs its validate tags. Body
// syntax problems and tag violations both come back as *domain.ValidationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "required")
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", fmt.Sprintf("max %d bytes", maxBodyBytes))
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return domain.NewValidationError(typeErr.Field, "must be of type "+typeErr.Type.String())
		default:
			return domain.NewValidationError("body", "malformed JSON")
		}
	}
	return validateStruct(dst)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate request: %w", err)
	}

	var errs domain.FieldErrors
	for _, fe := range verrs {
		errs.Add(fieldPath(fe), fieldMessage(fe))
	}
	return errs.Err()
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "uuid", "uuid4":
		return "must be a valid id"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return "at most " + fe.Param() + " items"
		}
		return "max " + fe.Param() + " characters"
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return "at least " + fe.Param() + " items"
		}
		return "min " + fe.Param() + " characters"
	case "url":
		return "must be a valid URL"
	}
	return "is invalid"
}

// pathID parses the {id} path parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a valid id")
	}
	return id, nil
}

// queryReader parses optional query parameters and collects every parse
// failure instead of stopping at the first.
type queryReader struct {
	values url.Values
	errs   domain.FieldErrors
}

func newQueryReader(r *http.Request) *queryReader {
	return &queryReader{values: r.URL.Query()}
}

func (q *queryReader) str(name string) string {
	return strings.TrimSpace(q.values.Get(name))
}

func (q *queryReader) optString(name string) *string {
	v := q.str(name)
	if v == "" {
		return nil
	}
	return &v
}

// positiveInt reads a paging parameter. An absent value yields 0 so the
// service applies its default; a present one must be at least 1.
func (q *queryReader) positiveInt(name string) int {
	v := q.str(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.errs.Add(name, "must be an integer")
		return 0
	}
	if n < 1 {
		q.errs.Add(name, "must be at least 1")
		return 0
	}
	return n
}

func (q *queryReader) optBool(name string) *bool {
	v := q.str(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.errs.Add(name, "must be true or false")
		return nil
	}
	return &b
}

func (q *queryReader) optUUID(name string) *uuid.UUID {
	v := q.str(name)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		q.errs.Add(name, "must be a valid id")
		return nil
	}
	return &id
}

// optTime accepts RFC 3339 timestamps and plain dates. A plain date used as
// an upper bound covers the whole day.
func (q *queryReader) optTime(name string, endOfDay bool) *time.Time {
	v := q.str(name)
	if v == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t
	}
	t, err := time.ParseInLocation(time.DateOnly, v, time.Local)
	if err != nil {
		q.errs.Add(name, "must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
		return nil
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t
}

func (q *queryReader) err() error {
	return q.errs.Err()
}
