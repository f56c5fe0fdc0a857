package timesheeting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoice-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// TestApplyBulkText testa a sincronização dos apontamentos a partir do texto
func TestApplyBulkText(t *testing.T) {
	customer := &domain.Customer{ID: "cus001", Name: "Acme"}

	tests := []struct {
		name     string
		text     string
		setup    func(customerRepo *mocks.MockCustomerRepository, timeEntryRepo *mocks.MockTimeEntryRepository)
		validate func(t *testing.T, saved []*domain.TimeEntry, err error)
	}{
		{
			name: "linha válida grava o apontamento do dia",
			text: "09:00 60 17:00 suporte",
			setup: func(customerRepo *mocks.MockCustomerRepository, timeEntryRepo *mocks.MockTimeEntryRepository) {
				customerRepo.EXPECT().GetCustomerByID("cus001").Return(customer, nil)
				timeEntryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(entry *domain.TimeEntry) error {
					assert.Equal(t, "cus001", entry.CustomerID)
					assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), entry.Date)
					assert.Equal(t, "09:00", *entry.Start)
					assert.Equal(t, "17:00", *entry.End)
					assert.Equal(t, 60, entry.PauseMinutes)
					assert.Equal(t, "suporte", entry.Notes)
					return nil
				})
			},
			validate: func(t *testing.T, saved []*domain.TimeEntry, err error) {
				assert.NoError(t, err)
				assert.Len(t, saved, 1)
				assert.NotEmpty(t, saved[0].ID)
			},
		},
		{
			name: "linha em branco remove o registro do dia",
			text: "09:00 17:00\n\n10:00 12:00",
			setup: func(customerRepo *mocks.MockCustomerRepository, timeEntryRepo *mocks.MockTimeEntryRepository) {
				customerRepo.EXPECT().GetCustomerByID("cus001").Return(customer, nil)
				timeEntryRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)
				timeEntryRepo.EXPECT().
					DeleteByCustomerAndDate("cus001", time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)).
					Return(nil)
			},
			validate: func(t *testing.T, saved []*domain.TimeEntry, err error) {
				assert.NoError(t, err)
				assert.Len(t, saved, 2)
			},
		},
		{
			name: "linha livre é gravada apenas como anotação",
			text: "plantão cancelado",
			setup: func(customerRepo *mocks.MockCustomerRepository, timeEntryRepo *mocks.MockTimeEntryRepository) {
				customerRepo.EXPECT().GetCustomerByID("cus001").Return(customer, nil)
				timeEntryRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(entry *domain.TimeEntry) error {
					assert.Nil(t, entry.Start)
					assert.Nil(t, entry.End)
					assert.Equal(t, "plantão cancelado", entry.Notes)
					return nil
				})
			},
			validate: func(t *testing.T, saved []*domain.TimeEntry, err error) {
				assert.NoError(t, err)
				assert.Len(t, saved, 1)
			},
		},
		{
			name: "cliente inexistente interrompe a operação",
			text: "09:00 17:00",
			setup: func(customerRepo *mocks.MockCustomerRepository, timeEntryRepo *mocks.MockTimeEntryRepository) {
				customerRepo.EXPECT().GetCustomerByID("cus001").Return(nil, nil)
			},
			validate: func(t *testing.T, saved []*domain.TimeEntry, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "cliente não encontrado")
				assert.Nil(t, saved)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			customerRepo := mocks.NewMockCustomerRepository(ctrl)
			timeEntryRepo := mocks.NewMockTimeEntryRepository(ctrl)
			tt.setup(customerRepo, timeEntryRepo)

			service := NewService(customerRepo, timeEntryRepo)
			saved, err := service.ApplyBulkText(context.Background(), "cus001", 2024, time.June, tt.text)
			tt.validate(t, saved, err)
		})
	}
}

// TestListMonthEntries delega ao repositório com os parâmetros corretos
func TestListMonthEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	timeEntryRepo := mocks.NewMockTimeEntryRepository(ctrl)

	expected := []*domain.TimeEntry{{ID: "tst001", CustomerID: "cus001"}}
	timeEntryRepo.EXPECT().ListByCustomerAndMonth("cus001", 2024, time.March).Return(expected, nil)

	service := NewService(customerRepo, timeEntryRepo)
	entries, err := service.ListMonthEntries("cus001", 2024, time.March)

	assert.NoError(t, err)
	assert.Equal(t, expected, entries)
}
