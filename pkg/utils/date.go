package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseClockMinutes converte um horário no formato "HH:MM" (ou "H:MM") para
// minutos desde a meia-noite
func ParseClockMinutes(token string) (int, bool) {
	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// ParseDurationMinutes converte uma duração para minutos. Aceita um inteiro
// puro (minutos) ou o formato "H:MM"
func ParseDurationMinutes(token string) (int, bool) {
	if minutes, err := strconv.Atoi(token); err == nil {
		if minutes < 0 {
			return 0, false
		}
		return minutes, true
	}

	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, false
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*60 + minutes, true
}

// FormatClock formata minutos desde a meia-noite como "HH:MM"
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DaysInMonth retorna a quantidade de dias do mês, considerando anos bissextos
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
