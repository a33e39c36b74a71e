package models

import "time"

// Reservation statuses. Cancellation and expiry delete the record outright,
// so active is the only status a stored reservation normally carries.
const (
	ReservationStatusActive = "active"
)

// Reservation holds one booked hour slot on a garage. StartHour and EndHour
// are "HH:00" labels; EndHour is always StartHour plus one hour modulo 24,
// with "00:00" meaning the end of the day for a slot starting at 23:00.
type Reservation struct {
	ID        string    `bson:"id" json:"id"`
	GarageID  string    `bson:"garageId" json:"garage"`
	UserID    string    `bson:"userId" json:"user"`
	StartHour string    `bson:"startHour" json:"startHour"`
	EndHour   string    `bson:"endHour" json:"endHour"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Slot returns the reservation's occupied interval. Stored labels are
// written by this service and always parse; a malformed record yields the
// zero slot, which overlaps nothing.
func (r Reservation) Slot() Slot {
	start, err := ParseHour(r.StartHour)
	if err != nil {
		return Slot{}
	}
	end, err := ParseHour(r.EndHour)
	if err != nil {
		return Slot{}
	}
	return Slot{Start: start, End: end}
}
