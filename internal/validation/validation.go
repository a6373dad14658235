package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/fhuszti/paper-site-go/internal/uuid"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Tell the validator to use the JSON tag as the “field name”
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Grab the value of `json:"foo,omitempty"`
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			// fallback to the Go field name or skip
			return fld.Name
		}
		return name
	})

	// validate our UUID wrapper through its textual form
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		if id, ok := v.Interface().(uuid.UUID); ok {
			if id.IsZero() {
				return ""
			}
			return id.String()
		}
		return nil
	}, uuid.UUID{})

	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
}

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// FieldErrors maps every failing field to the tag it failed on.
// It returns nil when err does not come from the validator.
func FieldErrors(err error) map[string]string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}
	errsMap := make(map[string]string, len(vErrs))
	for _, fieldErr := range vErrs {
		errsMap[fieldErr.Field()] = fieldErr.Tag()
	}
	return errsMap
}

func ErrorsToJson(validationErrs error) (string, error) {
	errsMap := FieldErrors(validationErrs)
	if errsMap == nil {
		return "", validationErrs
	}

	errsJson, err := json.Marshal(errsMap)
	if err != nil {
		return "", err
	}
	return string(errsJson), nil
}
