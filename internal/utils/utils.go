package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Returns the average of all given numbers n (0 for none)
func Average(n ...int) int {
	if len(n) == 0 {
		return 0
	}

	// Sum all numbers
	var sum int
	for _, num := range n {
		sum += num
	}

	// Divide sum by total numbers
	return sum / len(n)
}

// Returns block painted with a 24-bit background color, for terminals
// that support truecolor escape sequences
func ColoredBlock(block string, red, green, blue uint8) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}

// Parses a comma separated list of exactly n integers, e.g. "0,0,10,5"
func ParseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated numbers, got %q", n, s)
	}

	values := make([]int, n)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in %q", part, s)
		}
		values[i] = v
	}
	return values, nil
}
