package middleware

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	"github.com/sangkips/vendor-ledger-api/pkg/apperror"
)

var (
	panPattern   = regexp.MustCompile(`^[A-Za-z0-9]{10}$`)
	gstinPattern = regexp.MustCompile(`^[A-Za-z0-9]{15}$`)
)

// SetupValidator registers the ledger's custom tags on gin's validator and
// reports fields by their JSON names.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations adds the pan, gstin and company tags to v.
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return panPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	// blank is allowed and stored as null
	_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || gstinPattern.MatchString(s)
	})
	_ = v.RegisterValidation("company", func(fl validator.FieldLevel) bool {
		return enum.CompanyName(fl.Field().String()).IsValid()
	})
}

// BindingError turns a ShouldBind failure into an AppError: field errors
// named by JSON tag for validation failures, 400 for malformed bodies.
func BindingError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewBadRequestError("Invalid request body")
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, apperror.FieldError{Field: e.Field(), Message: validationMessage(e)})
	}
	return apperror.NewValidationError(fields)
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "pan":
		return "PAN must be 10 letters or digits"
	case "gstin":
		return "GSTIN must be 15 letters or digits"
	case "company":
		return "Must be one of: " + companyList()
	default:
		return "Invalid value"
	}
}

func companyList() string {
	names := make([]string, len(enum.CompanyNames))
	for i, c := range enum.CompanyNames {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
