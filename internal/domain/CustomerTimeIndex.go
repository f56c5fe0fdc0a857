package domain

// CustomerTimeIndex é o agregado derivado de minutos trabalhados por cliente,
// indexado por dia (yyyy-mm-dd) e por mês (yyyy-mm). É totalmente reconstruído
// a cada alteração nas entradas; nunca é persistido.
// Invariante: PerMonthMinutes[m] == soma de PerDayMinutes[d] para os dias d de m
type CustomerTimeIndex struct {
	CustomerName    string         `json:"customer_name"`
	PerDayMinutes   map[string]int `json:"per_day_minutes"`
	PerMonthMinutes map[string]int `json:"per_month_minutes"`
}
