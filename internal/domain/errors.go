package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidLogin = errors.New("credenciales inválidas")
	ErrMissingToken = errors.New("token ausente")
	ErrInvalidToken = errors.New("token inválido")
	ErrForbidden    = errors.New("acceso denegado")
)

// FieldError describe un campo ausente o con valor inválido en la entrada.
// errors.Is(err, ErrInvalidInput) es true para cualquier FieldError.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is permite comparar contra ErrInvalidInput.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Required construye el error de campo obligatorio ausente.
func Required(field string) error {
	return &FieldError{Field: field, Reason: "es requerido"}
}

// Invalid construye el error de campo con valor no aceptado.
func Invalid(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
