// Package format converte valores crus do serviço em textos de exibição no padrão de-DE
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/blumenladen/dashboard/pkg/utils"
)

// InvalidDate é o texto exibido quando a data não pode ser interpretada
const InvalidDate = "Invalid Date"

// CurrencySeparator fica entre o valor e o símbolo. Espaço comum, não U+00A0.
const CurrencySeparator = " "

// nomes de meses do CLDR (de)
var (
	monthsAbbreviated = [...]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."}
	monthsStandalone  = [...]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}
	monthsWide        = [...]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"}
)

var printer = message.NewPrinter(language.German)

// Currency formata centavos como euros: 123456 -> "1.234,56 €"
func Currency(cents int) string {
	amount := decimal.New(int64(cents), -2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	whole, fraction, _ := strings.Cut(amount.StringFixed(2), ".")
	units, _ := strconv.ParseInt(whole, 10, 64)

	return sign + printer.Sprintf("%d", units) + "," + fraction + CurrencySeparator + "€"
}

// Percentage não escala o valor: 12 -> "12%"
func Percentage(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "%"
}

// Date: "2024-03-05" -> "05. März 2024". Timestamps com offset são exibidos no
// offset em que vieram, sem conversão para o fuso local.
func Date(value string) string {
	t, err := utils.ParseTimestamp(value)
	if err != nil {
		return InvalidDate
	}
	return formatDate(t)
}

// DateTime: "2024-03-05T14:30:00" -> "05. März 2024, 14:30"
func DateTime(value string) string {
	t, err := utils.ParseTimestamp(value)
	if err != nil {
		return InvalidDate
	}
	return formatDate(t) + ", " + t.Format("15:04")
}

// MonthShort devolve só a abreviação do mês
func MonthShort(value string) string {
	t, err := utils.ParseTimestamp(value)
	if err != nil {
		return InvalidDate
	}
	return monthsStandalone[t.Month()-1]
}

// Month: "2024-03-05" -> "März 2024"
func Month(value string) string {
	t, err := utils.ParseTimestamp(value)
	if err != nil {
		return InvalidDate
	}
	return monthsWide[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

func formatDate(t time.Time) string {
	return t.Format("02") + ". " + monthsAbbreviated[t.Month()-1] + " " + strconv.Itoa(t.Year())
}
