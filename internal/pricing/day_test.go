package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

func TestCategorizeDay(t *testing.T) {
	const cutoff types.TimeString = "17:00"

	tests := []struct {
		name  string
		date  time.Time
		start types.TimeString
		want  domain.DayCategory
	}{
		{name: "monday", date: monday, start: "12:00", want: domain.DayWeekday},
		{name: "tuesday late", date: tuesday, start: "22:30", want: domain.DayWeekday},
		{name: "friday before cutoff", date: friday, start: "16:59", want: domain.DayWeekday},
		{name: "friday at cutoff", date: friday, start: "17:00", want: domain.DayFridaySaturday},
		{name: "friday night", date: friday, start: "23:00", want: domain.DayFridaySaturday},
		{name: "saturday morning", date: saturday, start: "10:00", want: domain.DayFridaySaturday},
		{name: "sunday", date: sunday, start: "18:00", want: domain.DaySunday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeDay(tt.date, tt.start, cutoff))
		})
	}
}

func TestCategorizeDay_CustomCutoff(t *testing.T) {
	assert.Equal(t, domain.DayWeekday, CategorizeDay(friday, "17:30", "18:00"))
	assert.Equal(t, domain.DayFridaySaturday, CategorizeDay(friday, "18:00", "18:00"))
}
