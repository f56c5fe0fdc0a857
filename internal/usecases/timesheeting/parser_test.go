package timesheeting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

// TestParseMonth_Gramatica testa a interpretação linha a linha do texto mensal
func TestParseMonth_Gramatica(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []TimeEntryDraft
	}{
		{
			name: "início e fim, dia em branco e dia com pausa e anotação",
			text: "11:00 13:00\n\n08:45 1:00 12:15 Meeting",
			expected: []TimeEntryDraft{
				{Start: stringPtr("11:00"), End: stringPtr("13:00"), PauseMinutes: 0},
				{IsEmpty: true},
				{Start: stringPtr("08:45"), End: stringPtr("12:15"), PauseMinutes: 60, Notes: "Meeting"},
			},
		},
		{
			name: "pausa como inteiro de minutos",
			text: "09:00 30 17:30",
			expected: []TimeEntryDraft{
				{Start: stringPtr("09:00"), End: stringPtr("17:30"), PauseMinutes: 30},
			},
		},
		{
			name: "horário único vira início de expediente aberto",
			text: "08:00",
			expected: []TimeEntryDraft{
				{Start: stringPtr("08:00")},
			},
		},
		{
			name: "hora com um dígito é normalizada",
			text: "8:15 9:45",
			expected: []TimeEntryDraft{
				{Start: stringPtr("08:15"), End: stringPtr("09:45")},
			},
		},
		{
			name: "linha livre é preservada como anotação",
			text: "feriado municipal",
			expected: []TimeEntryDraft{
				{Notes: "feriado municipal"},
			},
		},
		{
			name: "segundo token inválido mantém o início e degrada o restante",
			text: "09:00 almoço 17:00",
			expected: []TimeEntryDraft{
				{Start: stringPtr("09:00"), Notes: "almoço 17:00"},
			},
		},
		{
			name: "início válido com duração ilegível preserva o horário",
			text: "08:45 sessenta",
			expected: []TimeEntryDraft{
				{Start: stringPtr("08:45"), Notes: "sessenta"},
			},
		},
		{
			name: "dois tokens sem horário de início viram anotação",
			text: "reunião 14:00",
			expected: []TimeEntryDraft{
				{Notes: "reunião 14:00"},
			},
		},
		{
			name: "anotação após início e fim sem pausa",
			text: "09:00 18:00 suporte em produção",
			expected: []TimeEntryDraft{
				{Start: stringPtr("09:00"), End: stringPtr("18:00"), Notes: "suporte em produção"},
			},
		},
		{
			name: "horário fora do intervalo válido degrada para anotação",
			text: "25:00 26:00",
			expected: []TimeEntryDraft{
				{Notes: "25:00 26:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := ParseMonth(tt.text, 2024, time.June)

			assert.Len(t, results, len(tt.expected))
			for i, expected := range tt.expected {
				assert.Equal(t, time.Date(2024, time.June, i+1, 0, 0, 0, 0, time.UTC), results[i].Date)
				assert.Equal(t, expected, results[i].Parsed)
			}
		})
	}
}

// TestParseMonth_LinhasAlemDoMes garante que linhas excedentes são descartadas
func TestParseMonth_LinhasAlemDoMes(t *testing.T) {
	// Fevereiro de 2023 tem 28 dias; 31 linhas de entrada
	lines := make([]string, 31)
	for i := range lines {
		lines[i] = "09:00 17:00"
	}

	results := ParseMonth(strings.Join(lines, "\n"), 2023, time.February)

	assert.Len(t, results, 28)
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), results[27].Date)
}

// TestParseMonth_FevereiroBissexto cobre o ano bissexto
func TestParseMonth_FevereiroBissexto(t *testing.T) {
	lines := make([]string, 31)
	for i := range lines {
		lines[i] = ""
	}

	results := ParseMonth(strings.Join(lines, "\n"), 2024, time.February)

	assert.Len(t, results, 29)
	for _, result := range results {
		assert.True(t, result.Parsed.IsEmpty)
	}
}
