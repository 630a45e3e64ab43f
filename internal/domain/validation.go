package domain

import (
	"strings"
	"time"
)

// DateLayout formato canónico de fechas en la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ValidEmail verifica la forma local@dominio.tld: exactamente un "@" con parte
// local no vacía y al menos un "." después del "@". No hace más chequeos
// estructurales; la unicidad la garantiza el almacén.
func ValidEmail(s string) bool {
	if s == "" {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	dom := s[at+1:]
	dot := strings.Index(dom, ".")
	// el dominio necesita texto antes y después del punto
	return dot > 0 && dot < len(dom)-1
}

// ValidDate verifica que s sea una fecha exacta en formato YYYY-MM-DD.
// Entrada malformada es un resultado falso, no un error.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
