package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries the field→message map for a payload that violated
// declared constraints. All fields are evaluated; the map holds every
// violation, not just the first.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// Constraint messages per field, kept verbatim from the service contract.
var sizeMessages = map[string]string{
	"urlPaginaPersonal":        "La URL de la página personal no puede exceder 500 caracteres",
	"apodo":                    "El apodo no puede exceder 100 caracteres",
	"direccionCorrespondencia": "La dirección de correspondencia no puede exceder 500 caracteres",
	"biografia":                "La biografía no puede exceder 2000 caracteres",
	"organizacion":             "La organización no puede exceder 255 caracteres",
	"paisResidencia":           "El país de residencia no puede exceder 100 caracteres",
	"linkFacebook":             "El link de Facebook no puede exceder 500 caracteres",
	"linkTwitter":              "El link de Twitter no puede exceder 500 caracteres",
	"linkLinkedIn":             "El link de LinkedIn no puede exceder 500 caracteres",
	"linkInstagram":            "El link de Instagram no puede exceder 500 caracteres",
	"linkGithub":               "El link de GitHub no puede exceder 500 caracteres",
	"linkOtraRed":              "El link de otra red no puede exceder 500 caracteres",
}

// RequestValidator implements echo.Validator on top of validator/v10.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the request validator used by the Echo server.
func NewRequestValidator() *RequestValidator {
	v := validator.New()

	// Report violations under the JSON field name, not the Go field name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks the given struct and returns a ValidationError listing
// every violated field.
func (v *RequestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		name := fieldErr.Field()
		if msg, ok := sizeMessages[name]; ok {
			fields[name] = msg
		} else {
			fields[name] = fmt.Sprintf("El campo %s no puede exceder %s caracteres", name, fieldErr.Param())
		}
	}

	return &ValidationError{Fields: fields}
}
