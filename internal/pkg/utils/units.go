package utils

import (
	"healthpilot-service/internal/pkg/constvars"
	"math"
)

const (
	cmPerInch = 2.54
	kgPerLb   = 0.45359237
)

// HeightToCm normalizes a height value to centimeters. Unknown units pass
// the value through unchanged.
func HeightToCm(value float64, unit string) float64 {
	if unit == constvars.HeightUnitIn {
		return roundTenth(value * cmPerInch)
	}
	return value
}

// WeightToKg normalizes a weight value to kilograms. Unknown units pass the
// value through unchanged.
func WeightToKg(value float64, unit string) float64 {
	if unit == constvars.WeightUnitLb {
		return roundTenth(value * kgPerLb)
	}
	return value
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
