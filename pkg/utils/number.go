package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// MinutesToHours converte minutos trabalhados para horas com uma casa decimal
func MinutesToHours(minutes int) float64 {
	return RoundWithOneDecimalPlace(float64(minutes) / 60)
}
