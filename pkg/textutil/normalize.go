package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza un texto para búsqueda: minúsculas, sin diacríticos y sin
// espacios redundantes. Los nombres de beneficiarias llegan con acentos
// franceses o transliteraciones árabes ("Aïcha", "Khadija", "Amal"); la columna
// search_name se rellena con esta forma y las búsquedas comparan contra ella.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}
