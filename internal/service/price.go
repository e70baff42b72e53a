package service

import "strconv"

// NormalizePrice converts a stored price representation into a non-negative
// integer suitable for magnitude comparisons in natural language ("under 10
// lakhs"). The input may be a plain number, a numeric string, or a string
// carrying currency symbols, separators or words ("₹45,00,000").
//
// All non-digit characters are stripped and the remaining digit string is
// parsed. Malformed input yields 0 rather than an error: the value only
// affects assistant phrasing, never transactional correctness.
func NormalizePrice(display string) int64 {
	digits := make([]byte, 0, len(display))
	for i := 0; i < len(display); i++ {
		if display[i] >= '0' && display[i] <= '9' {
			digits = append(digits, display[i])
		}
	}
	if len(digits) == 0 {
		return 0
	}
	value, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
