package domain

// RoiItem representa o retorno por hora trabalhada de um cliente: receita
// faturada dividida pelas horas registradas. Derivado sob demanda, nunca
// persistido
type RoiItem struct {
	CustomerName string  `json:"customer_name"`
	TotalHours   float64 `json:"total_hours"`
	Revenue      float64 `json:"revenue"`
	RoiPerHour   float64 `json:"roi_per_hour"`
}
