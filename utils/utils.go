package utils

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

func RoundToXDp(f float64, dp uint8) float64 {
	e := math.Pow(10, float64(dp))
	return math.Round(f*e) / e
}

// FormatXDp rounds f to dp decimal places and drops trailing zeros, so 12.50 becomes "12.5" and 3.00 becomes "3".
func FormatXDp(f float64, dp uint8) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	r := RoundToXDp(f, dp)
	if r == 0 {
		// Avoid "-0"
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// NextAvailableFilename returns dir/name.ext, or dir/name_N.ext with the first N that doesn't exist yet.
func NextAvailableFilename(dir, name, ext string) string {
	path := filepath.Join(dir, name+ext)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	for i := 1; ; i++ {
		newName := fmt.Sprintf("%s_%d%s", name, i, ext)
		newPath := filepath.Join(dir, newName)
		if _, err := os.Stat(newPath); os.IsNotExist(err) {
			return newPath
		}
	}
}
