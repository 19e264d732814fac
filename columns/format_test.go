package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := map[int]string{
		0:     "0s",
		3:     "3s",
		65:    "1m 5s",
		123:   "2m 3s",
		3600:  "1h 0m 0s",
		3661:  "1h 1m 1s",
		3723:  "1h 2m 3s",
		90061: "25h 1m 1s",
		-5:    "0s",
	}
	for seconds, want := range tests {
		assert.Equal(t, want, FormatTime(seconds), "%d seconds", seconds)
	}
}
