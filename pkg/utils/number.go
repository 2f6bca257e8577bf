package utils

import "math"

// RoundWithTwoDecimalPlace arredonda um valor para duas casas decimais.
func RoundWithTwoDecimalPlace(value float64) float64 {
	if value == 0 {
		return 0
	}
	return math.Round(value*100) / 100
}

// RoundWithOneDecimalPlace arredonda um valor para uma casa decimal.
func RoundWithOneDecimalPlace(value float64) float64 {
	if value == 0 {
		return 0
	}
	return math.Round(value*10) / 10
}

// Clamp limita um valor ao intervalo [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
