package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidDate é devolvido quando nenhum layout conhecido reconhece o valor
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts cobre datas puras, timestamps ISO e o cabeçalho Date de e-mails,
// que o serviço guarda como data de compra.
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 -0700 (MST)",
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseTimestamp tenta cada layout conhecido. Valores sem fuso são tratados como UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}
