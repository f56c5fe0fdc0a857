package domain

// AvailablePeriods representa os períodos com horas registradas em qualquer
// cliente: anos em ordem decrescente e, por ano, meses em ordem crescente
type AvailablePeriods struct {
	Years        []int         `json:"years"`
	MonthsByYear map[int][]int `json:"months_by_year"`
}
