package timesheeting

import (
	"strings"
	"time"

	"github.com/vfg2006/invoice-manager-api/pkg/utils"
)

// TimeEntryDraft é o resultado da interpretação de uma linha do texto de
// apontamento. Linhas em branco produzem IsEmpty; tokens que não seguem a
// gramática degradam para Notes, a interpretação nunca falha
type TimeEntryDraft struct {
	IsEmpty      bool
	Start        *string
	End          *string
	PauseMinutes int
	Notes        string
}

// DayParseResult associa o rascunho interpretado ao dia do mês correspondente
type DayParseResult struct {
	Date   time.Time
	Parsed TimeEntryDraft
}

// ParseMonth interpreta o texto de apontamento de um mês inteiro. A linha N
// (base 1) corresponde ao dia N do mês; linhas além do último dia do mês são
// ignoradas.
//
// Gramática por linha:
//
//	vazia                      -> dia sem registro
//	"HH:MM HH:MM"              -> início e fim
//	"HH:MM <pausa> HH:MM ..."  -> início, pausa (minutos ou H:MM) e fim;
//	                              o restante vira anotação
//
// A interpretação é de melhor esforço: os campos que puderam ser lidos são
// mantidos e o restante não interpretado vira anotação do dia. Linhas sem
// horário de início válido são preservadas integralmente como anotação
func ParseMonth(text string, year int, month time.Month) []DayParseResult {
	lines := strings.Split(text, "\n")

	daysInMonth := utils.DaysInMonth(year, month)
	if len(lines) > daysInMonth {
		lines = lines[:daysInMonth]
	}

	results := make([]DayParseResult, 0, len(lines))
	for i, line := range lines {
		results = append(results, DayParseResult{
			Date:   time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC),
			Parsed: parseLine(line),
		})
	}

	return results
}

func parseLine(line string) TimeEntryDraft {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return TimeEntryDraft{IsEmpty: true}
	}

	start, startOK := utils.ParseClockMinutes(tokens[0])
	if !startOK {
		// Sem horário de início a linha inteira é anotação
		return TimeEntryDraft{Notes: strings.TrimSpace(line)}
	}

	startClock := utils.FormatClock(start)
	if len(tokens) == 1 {
		// Um único horário é interpretado como início de expediente ainda aberto
		return TimeEntryDraft{Start: &startClock}
	}

	// Com três ou mais tokens, o segundo pode ser a pausa do dia
	if len(tokens) >= 3 {
		pause, pauseOK := utils.ParseDurationMinutes(tokens[1])
		end, endOK := utils.ParseClockMinutes(tokens[2])
		if pauseOK && endOK {
			endClock := utils.FormatClock(end)
			return TimeEntryDraft{
				Start:        &startClock,
				End:          &endClock,
				PauseMinutes: pause,
				Notes:        strings.Join(tokens[3:], " "),
			}
		}
	}

	if end, endOK := utils.ParseClockMinutes(tokens[1]); endOK {
		endClock := utils.FormatClock(end)
		return TimeEntryDraft{
			Start: &startClock,
			End:   &endClock,
			Notes: strings.Join(tokens[2:], " "),
		}
	}

	// Início válido seguido de tokens ilegíveis mantém o horário interpretado
	// e preserva o restante como anotação
	return TimeEntryDraft{
		Start: &startClock,
		Notes: strings.Join(tokens[1:], " "),
	}
}
