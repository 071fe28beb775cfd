package service

import "math"

// RoundingPrecision is the multiplier used for two-decimal monetary rounding.
const RoundingPrecision = 100

// round rounds a float64 value to two decimal places using the package RoundingPrecision constant.
// This function is used throughout the service layer to ensure consistent rounding of monetary
// values in API responses.
//
// The rounding uses the standard "round half up" approach via math.Round.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}
