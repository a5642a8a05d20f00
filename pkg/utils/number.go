package utils

import "strings"

// NormalizeLocaleDecimal convierte un número con formato de locale
// venezolano (punto de miles, coma decimal) a la forma que aceptan los
// parsers numéricos: "36.123,45" -> "36123.45".
func NormalizeLocaleDecimal(value string) string {
	normalized := strings.TrimSpace(value)
	normalized = strings.ReplaceAll(normalized, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	return normalized
}
