package get_week_availability

import (
	"time"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	getWeekAvailability "github.com/m04kA/coaching-scheduler/internal/usecase/get_week_availability"
)

// WeekResponse HTTP response model
type WeekResponse struct {
	WeekStart string        `json:"weekStart"` // "2026-06-07"
	Days      []DayResponse `json:"days"`
}

// DayResponse слоты одного дня
type DayResponse struct {
	Date      string         `json:"date"`
	Weekday   string         `json:"weekday"`
	OpenCount int            `json:"openCount"`
	Slots     []SlotResponse `json:"slots"`
}

// SlotResponse один получасовой слот
type SlotResponse struct {
	Label     string `json:"label"`     // "10:30 AM"
	StartTime string `json:"startTime"` // RFC3339 в часовом поясе практики
	State     string `json:"state"`     // open | blocked | booked | too_soon
	Bookable  bool   `json:"bookable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekAvailability.Response) *WeekResponse {
	out := &WeekResponse{
		WeekStart: resp.WeekStart.Format(domain.DateFormat),
		Days:      make([]DayResponse, 0, len(resp.Days)),
	}

	for i := range resp.Days {
		day := &resp.Days[i]
		d := DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			Weekday:   day.Date.Weekday().String(),
			OpenCount: day.OpenCount(),
			Slots:     make([]SlotResponse, 0, len(day.Slots)),
		}
		for j := range day.Slots {
			slot := &day.Slots[j]
			d.Slots = append(d.Slots, SlotResponse{
				Label:     slot.Label.String(),
				StartTime: slot.StartTime.Format(time.RFC3339),
				State:     string(slot.State),
				Bookable:  slot.IsBookable(),
			})
		}
		out.Days = append(out.Days, d)
	}

	return out
}
