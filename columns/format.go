package columns

import (
	"fmt"
	"strconv"

	"github.com/mariokirby1703/pemon-information-table/levels"
)

// FormatTime renders seconds as a compact duration. Hours are shown only when
// non zero, minutes only when hours or minutes are non zero.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

func formatEstimatedTime(row levels.Level) string {
	if row.EstimatedTime == nil {
		return ""
	}
	return FormatTime(*row.EstimatedTime)
}

// formatValue is the fallback display text of a field.
func formatValue(row levels.Level, field string) string {
	v, err := row.Get(field)
	if err != nil || v == nil {
		return ""
	}
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	}
	return fmt.Sprint(v)
}
