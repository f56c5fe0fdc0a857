package domain

type TimeChartMode string

const (
	TimeChartModeMonthly TimeChartMode = "monthly"
	TimeChartModeDaily   TimeChartMode = "daily"
)

// TimeChartRow é uma linha pronta para o gráfico de horas: o rótulo do período
// (yyyy-mm no modo mensal, yyyy-mm-dd no diário) e as horas de cada cliente
type TimeChartRow struct {
	Label string             `json:"label"`
	Hours map[string]float64 `json:"hours"`
}

// TimeChartData é a série completa do gráfico. Customers preserva a ordem das
// colunas, já que o mapa de horas não tem ordem definida
type TimeChartData struct {
	Mode      TimeChartMode  `json:"mode"`
	Customers []string       `json:"customers"`
	Rows      []TimeChartRow `json:"rows"`
}
