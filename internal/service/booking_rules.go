package service

import (
	"errors"
	"time"

	"clinic-booking-api/internal/domain/entity"
)

// Clinic operating window. Appointments may start at 07:00 and the last
// valid start is 18:59; the clinic is closed on Sundays.
const (
	OpeningHour = 7
	ClosingHour = 19
)

var (
	// ErrPastAppointment is returned when the requested time is not in the future
	ErrPastAppointment = errors.New("appointment must be in the future")
	// ErrOutsideOperatingHours is returned when the requested time falls outside the clinic window
	ErrOutsideOperatingHours = errors.New("outside clinic operating hours")
	// ErrNoDoctorAvailable is returned when no active doctor is free at the requested time
	ErrNoDoctorAvailable = errors.New("no doctor available")
)

// ValidateSchedulingTime runs the time-based booking rules against a
// proposed start time. It is a pure function of its inputs so the rules
// can be exercised without touching storage.
func ValidateSchedulingTime(now, startAt time.Time) error {
	if !startAt.After(now) {
		return ErrPastAppointment
	}
	if startAt.Weekday() == time.Sunday {
		return ErrOutsideOperatingHours
	}
	if startAt.Hour() < OpeningHour || startAt.Hour() >= ClosingHour {
		return ErrOutsideOperatingHours
	}
	return nil
}

// SelectDoctor picks the doctor for a booking with no explicit doctor
// request. Candidates must already be filtered to active doctors and
// sorted by ascending id; the first one without a conflicting
// appointment at the slot wins, which keeps the choice deterministic.
func SelectDoctor(candidates []entity.Doctor, bookedDoctorIDs []int64) (*entity.Doctor, error) {
	booked := make(map[int64]struct{}, len(bookedDoctorIDs))
	for _, id := range bookedDoctorIDs {
		booked[id] = struct{}{}
	}

	for i := range candidates {
		if _, taken := booked[candidates[i].ID]; !taken {
			return &candidates[i], nil
		}
	}
	return nil, ErrNoDoctorAvailable
}
