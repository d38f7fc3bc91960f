package utils

import "time"

const (
	// NoDisponible es el texto por defecto cuando falta un campo en la vista.
	NoDisponible = "N/A"

	fechaLayout     = "2006-01-02"
	fechaHoraLayout = "2006-01-02 15:04"
)

// FirstNonEmpty hace la búsqueda ordenada sobre nombres de campo con variantes
// legacy: primero el nombre actual, después el viejo, y "" si no hay ninguno.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// OrNA sustituye un string vacío por "N/A" para mostrar.
func OrNA(s string) string {
	if s == "" {
		return NoDisponible
	}
	return s
}

// FormatFecha devuelve la fecha como YYYY-MM-DD, o "N/A" si no hay fecha.
// Solo para mostrar: nunca se persiste el texto formateado.
func FormatFecha(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NoDisponible
	}
	return t.Format(fechaLayout)
}

// FormatFechaHora devuelve fecha y hora como YYYY-MM-DD HH:MM, o "N/A".
func FormatFechaHora(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NoDisponible
	}
	return t.Format(fechaHoraLayout)
}

// ParseFecha interpreta el texto YYYY-MM-DD de un input type=date.
func ParseFecha(s string) (time.Time, error) {
	return time.Parse(fechaLayout, s)
}
