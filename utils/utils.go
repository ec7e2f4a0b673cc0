package utils

import (
	"math"
	"strconv"
)

func RoundToXDp(f float64, dp uint8) float64 {
	e := math.Pow(10, float64(dp))
	return math.Round(f*e) / e
}

func BoolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// FormatNumber prints f without trailing zeros, e.g. 9600 -> "9600", 0.85 -> "0.85".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
