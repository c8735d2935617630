package live

import (
	"math"
	"strconv"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return fmtInt(value)
	}
	return "0" + fmtInt(value)
}

// formatClock renders seconds as mm:ss.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return pad2(seconds/60) + ":" + pad2(seconds%60)
}

// optionLabel maps an option index to A, B, C, D.
func optionLabel(index int) string {
	if index < 0 || index >= 26 {
		return fmtInt(index + 1)
	}
	return string(rune('A' + index))
}

func ratio(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// formatPercent renders part/whole as a rounded-up whole percentage.
func formatPercent(part, whole int) string {
	return fmtInt(int(math.Ceil(ratio(part, whole)*100))) + "%"
}
