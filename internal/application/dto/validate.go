package dto

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/inventario-equipos/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los errores se reportan con el nombre JSON del campo, que es el que ve el cliente.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// maxbytes=N limita la longitud en bytes (bcrypt no acepta más de 72).
	if err := v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= n
	}); err != nil {
		panic(err)
	}
	return v
}

// fieldChecker lo implementan las peticiones con reglas que no se expresan con tags.
type fieldChecker interface {
	checkFields() []domain.FieldError
}

// Validate aplica los tags `validate` de in (puntero a struct) y sus reglas adicionales.
// Devuelve *domain.ValidationError con todos los campos inválidos, o nil.
func Validate(in any) error {
	var fields []domain.FieldError
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, domain.NewFieldError(fe.Field(), fe.Value()))
		}
	}
	if c, ok := in.(fieldChecker); ok {
		fields = append(fields, c.checkFields()...)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ParseDate acepta RFC 3339 o fecha simple YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

// NormalizeEmail recorta espacios y pasa a minúsculas; la unicidad se evalúa sobre este valor.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
