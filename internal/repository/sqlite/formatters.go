package sqlite

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FormatDaysForDB encodes a weekday set as a sorted, comma separated list ("0,3,6").
func FormatDaysForDB(days []int) string {
	sorted := append([]int(nil), days...)
	sort.Ints(sorted)
	parts := make([]string, 0, len(sorted))
	for i, d := range sorted {
		if i > 0 && sorted[i-1] == d {
			continue
		}
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ",")
}

// ParseDaysFromDB decodes the output of FormatDaysForDB. An empty column is an empty set.
func ParseDaysFromDB(s string) ([]int, error) {
	days := []int{}
	if strings.TrimSpace(s) == "" {
		return days, nil
	}
	for _, part := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid weekday %q: %w", part, err)
		}
		days = append(days, d)
	}
	return days, nil
}
