package export

import (
	"fmt"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/usecase/queries"

	ics "github.com/arran4/golang-ical"
)

const (
	ICSContentType = "text/calendar; charset=utf-8"
	productID      = "-//sched//appointments//EN"
)

// AppointmentICS renders a single-event calendar for one appointment. Times
// are written in UTC.
func AppointmentICS(v *queries.AppointmentView, businessName string, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ics.MethodPublish)

	event := cal.AddEvent(fmt.Sprintf("%s@sched", v.ID))
	event.SetDtStampTime(now)
	event.SetCreatedTime(v.CreatedAt)
	event.SetModifiedAt(v.UpdatedAt)
	event.SetStartAt(v.Start)
	event.SetEndAt(v.End)
	event.SetSummary(fmt.Sprintf("Appointment at %s", businessName))
	if v.Notes != "" {
		event.SetDescription(v.Notes)
	}
	event.SetStatus(icsStatus(appointment.Status(v.Status)))

	return cal.Serialize()
}

func icsStatus(s appointment.Status) ics.ObjectStatus {
	switch s {
	case appointment.StatusPending:
		return ics.ObjectStatusTentative
	case appointment.StatusCancelled, appointment.StatusNoShow:
		return ics.ObjectStatusCancelled
	default:
		return ics.ObjectStatusConfirmed
	}
}
