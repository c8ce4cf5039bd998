package dto

import (
	"fmt"
	"time"
)

// DataResponse envoltura estándar de recursos: { "data": ... }.
type DataResponse struct {
	Data any `json:"data"`
}

// MessageResponse envoltura de confirmaciones: { "message": ... }.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo de error 422 con mensajes por campo.
type ValidationErrorResponse struct {
	Error    string              `json:"error"`
	Messages map[string][]string `json:"messages"`
}

// ValidationMessages acumula errores de validación por campo.
type ValidationMessages map[string][]string

// Add agrega un mensaje al campo.
func (v ValidationMessages) Add(campo, mensaje string) {
	v[campo] = append(v[campo], mensaje)
}

// Empty indica si no hubo errores.
func (v ValidationMessages) Empty() bool { return len(v) == 0 }

// Formatos de fecha aceptados en peticiones.
var fechaLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ParseFecha interpreta una fecha de petición. Acepta fecha sola,
// fecha con hora, o RFC3339.
func ParseFecha(s string) (time.Time, error) {
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
}

// FormatFecha serializa fechas de negocio como las espera la app móvil.
func FormatFecha(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
