package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/invoice-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/invoice-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func activeCustomers() []*domain.Customer {
	return []*domain.Customer{
		{ID: "cus001", Name: "Acme", Status: domain.CustomerStatusActive},
		{ID: "cus002", Name: "Beta", Status: domain.CustomerStatusActive},
	}
}

func workedDay(customerID string, day int, start, end string) *domain.TimeEntry {
	return &domain.TimeEntry{
		CustomerID: customerID,
		Date:       time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
		Start:      stringPtr(start),
		End:        stringPtr(end),
	}
}

// TestGetTimeChart valida a montagem do gráfico a partir dos repositórios
func TestGetTimeChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	timeEntryRepo := mocks.NewMockTimeEntryRepository(ctrl)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

	customerRepo.EXPECT().
		ListCustomers([]domain.CustomerStatus{domain.CustomerStatusActive}).
		Return(activeCustomers(), nil)
	timeEntryRepo.EXPECT().ListByCustomer("cus001").Return([]*domain.TimeEntry{
		workedDay("cus001", 1, "09:00", "17:00"),
	}, nil)
	timeEntryRepo.EXPECT().ListByCustomer("cus002").Return(nil, nil)

	service := NewService(customerRepo, timeEntryRepo, invoiceRepo)
	chart, err := service.GetTimeChart(domain.TimeChartModeMonthly, 2024, time.January)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Beta"}, chart.Customers)
	assert.Len(t, chart.Rows, 12)
	assert.Equal(t, 8.0, chart.Rows[2].Hours["Acme"])
	assert.Equal(t, 0.0, chart.Rows[2].Hours["Beta"])
}

// TestGetROIRanking valida o cruzamento com o faturamento anual
func TestGetROIRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	timeEntryRepo := mocks.NewMockTimeEntryRepository(ctrl)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

	customerRepo.EXPECT().
		ListCustomers([]domain.CustomerStatus{domain.CustomerStatusActive}).
		Return(activeCustomers(), nil)
	timeEntryRepo.EXPECT().ListByCustomer("cus001").Return([]*domain.TimeEntry{
		workedDay("cus001", 1, "09:00", "19:00"),
	}, nil)
	timeEntryRepo.EXPECT().ListByCustomer("cus002").Return([]*domain.TimeEntry{
		workedDay("cus002", 1, "09:00", "10:00"),
	}, nil)
	invoiceRepo.EXPECT().TotalsByCustomerForYear(2024).Return(map[string]float64{
		"Acme": 1000,
		"Beta": 500,
	}, nil)

	service := NewService(customerRepo, timeEntryRepo, invoiceRepo)
	items, err := service.GetROIRanking(intPtr(2024))

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Beta", items[0].CustomerName)
	assert.Equal(t, 500.0, items[0].RoiPerHour)
	assert.Equal(t, "Acme", items[1].CustomerName)
	assert.Equal(t, 100.0, items[1].RoiPerHour)
}

// TestGetROIRanking_SemAno usa o modo sem faturamento
func TestGetROIRanking_SemAno(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	timeEntryRepo := mocks.NewMockTimeEntryRepository(ctrl)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

	customerRepo.EXPECT().
		ListCustomers([]domain.CustomerStatus{domain.CustomerStatusActive}).
		Return(activeCustomers()[:1], nil)
	timeEntryRepo.EXPECT().ListByCustomer("cus001").Return([]*domain.TimeEntry{
		workedDay("cus001", 1, "09:00", "12:00"),
	}, nil)

	service := NewService(customerRepo, timeEntryRepo, invoiceRepo)
	items, err := service.GetROIRanking(nil)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 3.0, items[0].TotalHours)
	assert.Equal(t, 0.0, items[0].Revenue)
}

// TestGetAvailablePeriods valida a enumeração a partir dos apontamentos
func TestGetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	timeEntryRepo := mocks.NewMockTimeEntryRepository(ctrl)
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

	customerRepo.EXPECT().
		ListCustomers([]domain.CustomerStatus{domain.CustomerStatusActive}).
		Return(activeCustomers()[:1], nil)
	timeEntryRepo.EXPECT().ListByCustomer("cus001").Return([]*domain.TimeEntry{
		workedDay("cus001", 1, "09:00", "12:00"),
		{
			CustomerID: "cus001",
			Date:       time.Date(2023, time.November, 10, 0, 0, 0, 0, time.UTC),
			Start:      stringPtr("09:00"),
			End:        stringPtr("10:00"),
		},
	}, nil)

	service := NewService(customerRepo, timeEntryRepo, invoiceRepo)
	periods, err := service.GetAvailablePeriods()

	assert.NoError(t, err)
	assert.Equal(t, []int{2024, 2023}, periods.Years)
	assert.Equal(t, []int{3}, periods.MonthsByYear[2024])
	assert.Equal(t, []int{11}, periods.MonthsByYear[2023])
}
