package timesheeting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
)

func entry(day int, start, end string, pause int) *domain.TimeEntry {
	return &domain.TimeEntry{
		ID:           "tst001",
		CustomerID:   "cus001",
		Date:         time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
		Start:        stringPtr(start),
		End:          stringPtr(end),
		PauseMinutes: pause,
	}
}

// TestBuildCustomerTimeIndex valida a agregação por dia e por mês
func TestBuildCustomerTimeIndex(t *testing.T) {
	t.Run("soma minutos por dia e por mês descontando pausas", func(t *testing.T) {
		entries := []*domain.TimeEntry{
			entry(1, "09:00", "17:00", 60), // 420
			entry(2, "08:30", "12:30", 0),  // 240
		}

		index := BuildCustomerTimeIndex("Acme", entries)

		assert.Equal(t, "Acme", index.CustomerName)
		assert.Equal(t, 420, index.PerDayMinutes["2024-03-01"])
		assert.Equal(t, 240, index.PerDayMinutes["2024-03-02"])
		assert.Equal(t, 660, index.PerMonthMinutes["2024-03"])
	})

	t.Run("total do mês é a soma dos dias", func(t *testing.T) {
		entries := []*domain.TimeEntry{
			entry(5, "10:00", "16:00", 30),
			entry(6, "09:00", "11:00", 0),
			entry(7, "14:00", "18:15", 15),
		}

		index := BuildCustomerTimeIndex("Acme", entries)

		sum := 0
		for _, minutes := range index.PerDayMinutes {
			sum += minutes
		}
		assert.Equal(t, sum, index.PerMonthMinutes["2024-03"])
	})

	t.Run("pausa maior que o intervalo não produz minutos negativos", func(t *testing.T) {
		entries := []*domain.TimeEntry{
			entry(10, "09:00", "10:00", 120),
		}

		index := BuildCustomerTimeIndex("Acme", entries)

		assert.Equal(t, 0, index.PerDayMinutes["2024-03-10"])
		assert.Equal(t, 0, index.PerMonthMinutes["2024-03"])
	})

	t.Run("dias sem início ou fim são ignorados", func(t *testing.T) {
		open := &domain.TimeEntry{
			CustomerID: "cus001",
			Date:       time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
			Start:      stringPtr("09:00"),
			Notes:      "expediente em aberto",
		}
		noteOnly := &domain.TimeEntry{
			CustomerID: "cus001",
			Date:       time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
			Notes:      "feriado",
		}

		index := BuildCustomerTimeIndex("Acme", []*domain.TimeEntry{open, noteOnly, entry(5, "09:00", "10:00", 0)})

		assert.NotContains(t, index.PerDayMinutes, "2024-03-03")
		assert.NotContains(t, index.PerDayMinutes, "2024-03-04")
		assert.Equal(t, 60, index.PerMonthMinutes["2024-03"])
	})

	t.Run("meses distintos são agregados separadamente", func(t *testing.T) {
		march := entry(31, "09:00", "12:00", 0)
		april := &domain.TimeEntry{
			CustomerID:   "cus001",
			Date:         time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			Start:        stringPtr("09:00"),
			End:          stringPtr("11:00"),
			PauseMinutes: 0,
		}

		index := BuildCustomerTimeIndex("Acme", []*domain.TimeEntry{march, april})

		assert.Equal(t, 180, index.PerMonthMinutes["2024-03"])
		assert.Equal(t, 120, index.PerMonthMinutes["2024-04"])
	})
}
