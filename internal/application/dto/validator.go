package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Peluqueria-api/internal/domain"
)

var (
	emailRe   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneCORe = regexp.MustCompile(`^3\d{9}$`)
)

// Validator envuelve validator/v10 con las reglas propias del dominio:
// email_co (formato de correo) y phone_co (celular colombiano, 10 dígitos iniciando en 3).
type Validator struct {
	v *validator.Validate
}

// NewValidator construye el validador y registra las reglas personalizadas.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("email_co", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone_co", func(fl validator.FieldLevel) bool {
		return phoneCORe.MatchString(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return jsonName(f.Tag.Get("json"), f.Name)
	})
	return &Validator{v: v}
}

// Struct valida in y traduce el primer error a domain.ErrValidation con un mensaje legible.
func (val *Validator) Struct(in any) error {
	err := val.v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Validation(err.Error())
	}
	return domain.Validation(describe(verrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", field)
	case "email_co":
		return fmt.Sprintf("%s no tiene un formato de correo válido", field)
	case "phone_co":
		return fmt.Sprintf("%s debe ser un celular de 10 dígitos que inicia en 3", field)
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s debe tener como máximo %s", field, fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s es inválido", field)
	}
}

func jsonName(tag, fallback string) string {
	name := strings.SplitN(tag, ",", 2)[0]
	if name == "" || name == "-" {
		return fallback
	}
	return name
}
