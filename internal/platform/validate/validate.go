package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Patrón compartido por login y alta/edición de dueños.
// Permisivo a propósito: un "@" con algo antes y un dominio con punto.
// No intenta ser RFC 5322.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email valida la forma del correo.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// ToInt intenta coercionar un valor JSON a entero.
// Acepta números enteros (json.Number o float64 sin parte decimal),
// strings numéricos y enteros nativos. Rechaza floats, strings vacíos
// y cualquier otra cosa. ok=false es el centinela "not-a-number" que
// cada handler debe chequear antes de usar el valor como clave.
func ToInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		// Decoders sin UseNumber entregan float64; solo vale si es entero exacto.
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

// CSVValue serializa un valor como campo CSV.
// nil => string vacío (nunca el literal "null").
// Si el valor contiene coma, comillas o salto de línea, se envuelve en
// comillas dobles y se duplican las comillas internas.
func CSVValue(v any) string {
	if v == nil {
		return ""
	}
	s := fmt.Sprint(v)
	if strings.ContainsAny(s, ",\"\r\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
