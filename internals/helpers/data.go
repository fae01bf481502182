package helper

import (
	"errors"
	"strings"
	"time"
)

const (
	// Formato ISO usado nos payloads e query strings (ex.: 2024-03-01)
	FormatoDataISO = "2006-01-02"
	// Formato de exibição brasileiro (ex.: 01/03/2024)
	FormatoDataBR = "02/01/2006"
)

// ParseData interpreta uma data "YYYY-MM-DD" e normaliza para meia-noite UTC,
// que é como as colunas `date` voltam do Postgres.
func ParseData(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("data vazia")
	}
	t, err := time.Parse(FormatoDataISO, s)
	if err != nil {
		return time.Time{}, errors.New("data inválida, use o formato YYYY-MM-DD")
	}
	return t, nil
}

// TruncarDia zera o componente de hora mantendo o dia em UTC.
func TruncarDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
