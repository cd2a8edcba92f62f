package response

import (
	"time"

	"github.com/aljonb/sched/internal/usecase/queries"
)

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type DaySlotsResponse struct {
	Date     string         `json:"date"`
	Timezone string         `json:"timezone"`
	Slots    []SlotResponse `json:"slots"`
}

type RangeSlotsResponse struct {
	Days []*DaySlotsResponse `json:"days"`
}

func FromDaySlots(d *queries.DaySlots) *DaySlotsResponse {
	res := &DaySlotsResponse{
		Date:     d.Date,
		Timezone: d.Timezone,
		Slots:    make([]SlotResponse, 0, len(d.Slots)),
	}
	for _, s := range d.Slots {
		res.Slots = append(res.Slots, SlotResponse(s))
	}
	return res
}

func FromRangeSlots(days []*queries.DaySlots) *RangeSlotsResponse {
	res := &RangeSlotsResponse{Days: make([]*DaySlotsResponse, 0, len(days))}
	for _, d := range days {
		res.Days = append(res.Days, FromDaySlots(d))
	}
	return res
}
