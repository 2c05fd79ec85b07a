package utils

// RoundDecimal rounds a non-negative value to the given number of decimal places.
// For example, RoundDecimal(66.6666, 2) returns 66.67.
func RoundDecimal(value float64, decimals int) float64 {
	pow := 1.0
	for i := 0; i < decimals; i++ {
		pow *= 10
	}

	return float64(int(value*pow+0.5)) / pow
}

// Percent returns part/total*100 rounded to two decimals; zero when total is zero.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return RoundDecimal(float64(part)/float64(total)*100, 2)
}
