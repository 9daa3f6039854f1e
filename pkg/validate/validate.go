// Package validate centraliza la validación declarativa de requests:
// esquemas como tags en los DTOs y errores de campo legibles para el cliente.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// phoneRe acepta un prefijo + opcional y hasta 16 dígitos sin cero inicial.
var phoneRe = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

// Validator evalúa esquemas declarados con tags `validate` sobre los DTOs.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con las reglas propias de la aplicación:
//   - phone: teléfono en formato internacional laxo (+ opcional)
//   - decimal.Decimal se valida como número (min, max funcionan sobre el valor)
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Nombre del campo en los mensajes: tag json (o query), no el nombre Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{v: v}
}

// Struct valida el DTO y devuelve la lista de errores de campo legibles.
// Devuelve nil si el valor cumple el esquema.
func (x *Validator) Struct(s interface{}) []string {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Error de uso del validador (tipo no soportado), no del cliente.
		return []string{"invalid request"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

// message traduce un error de campo a un mensaje legible, en el estilo de
// los esquemas originales ("Name must be at least 2 characters").
func message(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Please enter a valid email"
	case "phone":
		return "Please enter a valid phone number"
	case "min":
		if isString(fe.Kind()) {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		if fe.Param() == "0" {
			return fmt.Sprintf("%s cannot be negative", label)
		}
		return fmt.Sprintf("%s cannot be less than %s", label, fe.Param())
	case "max":
		if isString(fe.Kind()) {
			return fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s cannot be greater than %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func isString(k reflect.Kind) bool {
	return k == reflect.String
}

// humanize convierte un tag json (camelCase) en etiqueta legible: "sortOrder" -> "Sort order".
func humanize(field string) string {
	if field == "" {
		return field
	}
	var b strings.Builder
	for i, r := range field {
		if i == 0 {
			if r >= 'a' && r <= 'z' {
				b.WriteRune(r - ('a' - 'A'))
			} else {
				b.WriteRune(r)
			}
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
