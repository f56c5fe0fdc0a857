package domain

import (
	"time"

	"github.com/vfg2006/invoice-manager-api/pkg/utils"
)

// MonthKeyLayout é o layout canônico das chaves mensais (ex: 2024-03)
const MonthKeyLayout = "2006-01"

// TimeEntry representa o intervalo trabalhado para um cliente em um dia.
// Start e End usam o formato "HH:MM"; quando ausentes, o dia não possui
// intervalo registrado
type TimeEntry struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	Date         time.Time `json:"date"`
	Start        *string   `json:"start,omitempty"`
	End          *string   `json:"end,omitempty"`
	PauseMinutes int       `json:"pause_minutes"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WorkedMinutes calcula os minutos trabalhados do dia: fim - início - pausa,
// nunca negativo. Retorna false quando início ou fim estão ausentes ou
// inválidos
func (e *TimeEntry) WorkedMinutes() (int, bool) {
	if e.Start == nil || e.End == nil {
		return 0, false
	}

	start, ok := utils.ParseClockMinutes(*e.Start)
	if !ok {
		return 0, false
	}

	end, ok := utils.ParseClockMinutes(*e.End)
	if !ok {
		return 0, false
	}

	minutes := end - start - e.PauseMinutes
	if minutes < 0 {
		minutes = 0
	}

	return minutes, true
}

// MonthKey retorna a chave mensal da entrada no formato yyyy-mm
func (e *TimeEntry) MonthKey() string {
	return e.Date.Format(MonthKeyLayout)
}
