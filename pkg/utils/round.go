// Add utility functions here
package utils

import "math"

// Round2 rounds a float to 2 decimal places (hours, rates).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds a float to 1 decimal place (minutes).
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
