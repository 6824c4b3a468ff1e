package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	hhmmRe  = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s-]+$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool { //nolint:errcheck
		return hhmmRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool { //nolint:errcheck
		return phoneRe.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Messages renders validation failures one per field, e.g. "endTime must be after startTime".
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", field, lowerFirst(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "hhmm":
		return fmt.Sprintf("%s must be in HH:mm format", field)
	case "phone":
		return fmt.Sprintf("%s is not a valid phone number", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	}
	return fmt.Sprintf("%s is invalid", field)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
