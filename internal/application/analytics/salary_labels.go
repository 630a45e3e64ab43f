package analytics

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SalaryBucket rango salarial cerrado [Low, High] en unidades enteras de la
// moneda configurada.
type SalaryBucket struct {
	Low  int64
	High int64
}

// salaryBuckets límites fijos de la distribución salarial. El último rango
// cubre el resto del dominio y se presenta como abierto.
var salaryBuckets = []SalaryBucket{
	{0, 300_000},
	{300_001, 600_000},
	{600_001, 1_000_000},
	{1_000_001, 1_500_000},
	{1_500_001, 99_999_999},
}

const (
	// labelDivisor un lakh: las etiquetas se expresan en cientos de miles.
	labelDivisor = 100_000
	// openEndedAbove los rangos cuyo límite superior supera este umbral se
	// presentan como "<low>+" en lugar de un rango cerrado.
	openEndedAbove = 2_000_000
)

// SalaryLabeler formatea etiquetas de rango salarial según la configuración
// regional: símbolo de moneda, separador decimal del locale y sufijo de
// unidad (ej. "₹3.0L - ₹6.0L", "₹15.0L+").
type SalaryLabeler struct {
	printer *message.Printer
	symbol  string
	suffix  string
}

// NewSalaryLabeler construye el formateador. Un locale que no parsea cae en
// inglés.
func NewSalaryLabeler(locale, symbol, suffix string) *SalaryLabeler {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &SalaryLabeler{printer: message.NewPrinter(tag), symbol: symbol, suffix: suffix}
}

// Label devuelve la etiqueta del rango.
func (l *SalaryLabeler) Label(b SalaryBucket) string {
	if b.High > openEndedAbove {
		return l.printer.Sprintf("%s%.1f%s+", l.symbol, float64(b.Low)/labelDivisor, l.suffix)
	}
	return l.printer.Sprintf("%s%.1f%s - %s%.1f%s",
		l.symbol, float64(b.Low)/labelDivisor, l.suffix,
		l.symbol, float64(b.High)/labelDivisor, l.suffix)
}
