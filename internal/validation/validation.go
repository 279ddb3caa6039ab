package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"atlas/internal/apperr"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their json, form or query name.
// It also knows two storage-bound rules: "int32" for values written to
// INTEGER columns and "nonul" for text, since Postgres rejects NUL bytes.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("int32", fitsInt32)
	_ = v.RegisterValidation("nonul", noNUL)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

func fitsInt32(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	return n >= math.MinInt32 && n <= math.MaxInt32
}

func noNUL(fl validator.FieldLevel) bool {
	return !strings.ContainsRune(fl.Field().String(), 0)
}

// Describe renders validator errors as "field: rule" pairs, e.g.
// "name: max=200; password: min=8". Other errors are returned verbatim.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule = fmt.Sprintf("%s=%s", rule, fe.Param())
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), rule))
	}
	return strings.Join(parts, "; ")
}

// CustomValidator plugs a validator into echo. Failures come back as
// apperr validation errors so they render as 422.
type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: New()}
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperr.Wrap(apperr.Validation(Describe(err)), err)
	}
	return nil
}
