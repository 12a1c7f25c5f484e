package form

import "fmt"

// FormatPhone reformats raw input into the Brazilian display mask as digits
// accumulate: up to 2 digits pass through, then "(DD) DDDD", "(DD) DDDD-DDDD"
// and finally "(DD) DDDDD-DDDD" for 11-digit mobile numbers. Anything beyond
// 11 digits is dropped. Reapplying the function to its own output is a no-op,
// so it can run on every keystroke.
func FormatPhone(raw string) string {
	digits := make([]byte, 0, 11)
	for i := 0; i < len(raw) && len(digits) < 11; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}

	switch n := len(digits); {
	case n <= 2:
		return string(digits)
	case n <= 6:
		return fmt.Sprintf("(%s) %s", digits[:2], digits[2:])
	case n <= 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:])
	default:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
	}
}
