package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12AM"},
		{1, "1AM"},
		{11, "11AM"},
		{12, "12PM"},
		{13, "1PM"},
		{23, "11PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHour(tt.hour))
	}
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex(time.Monday))
	assert.Equal(t, 4, WeekdayIndex(time.Friday))
	assert.Equal(t, 6, WeekdayIndex(time.Sunday))
	assert.Equal(t, "Monday", WeekdayNames[WeekdayIndex(time.Monday)])
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(5, 0), "zero whole never divides")
	assert.Equal(t, 50, Percentage(1, 2))
	assert.Equal(t, 67, Percentage(2, 3), "rounds to nearest")
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 100, Percentage(3, 3))
}
