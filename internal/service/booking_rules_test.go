package service

import (
	"testing"
	"time"

	"clinic-booking-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-10 is a Monday.
var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestValidateSchedulingTime(t *testing.T) {
	tests := []struct {
		name    string
		startAt time.Time
		wantErr error
	}{
		{
			name:    "monday mid-morning is accepted",
			startAt: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			wantErr: nil,
		},
		{
			name:    "in the past is rejected",
			startAt: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			wantErr: ErrPastAppointment,
		},
		{
			name:    "exactly now is rejected",
			startAt: now,
			wantErr: ErrPastAppointment,
		},
		{
			name:    "sunday is rejected",
			startAt: time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC),
			wantErr: ErrOutsideOperatingHours,
		},
		{
			name:    "saturday is accepted",
			startAt: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
			wantErr: nil,
		},
		{
			name:    "before opening is rejected",
			startAt: time.Date(2025, 3, 11, 6, 59, 0, 0, time.UTC),
			wantErr: ErrOutsideOperatingHours,
		},
		{
			name:    "at opening is accepted",
			startAt: time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC),
			wantErr: nil,
		},
		{
			name:    "last slot before closing is accepted",
			startAt: time.Date(2025, 3, 11, 18, 59, 0, 0, time.UTC),
			wantErr: nil,
		},
		{
			name:    "at closing is rejected",
			startAt: time.Date(2025, 3, 11, 19, 0, 0, 0, time.UTC),
			wantErr: ErrOutsideOperatingHours,
		},
		{
			name:    "late evening is rejected",
			startAt: time.Date(2025, 3, 11, 22, 0, 0, 0, time.UTC),
			wantErr: ErrOutsideOperatingHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchedulingTime(now, tt.startAt)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSchedulingTime_PastRuleWinsOverHours(t *testing.T) {
	// A past Sunday reports the future-time violation first.
	pastSunday := time.Date(2025, 3, 9, 3, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, ValidateSchedulingTime(now, pastSunday), ErrPastAppointment)
}

func doctorWithID(id int64) entity.Doctor {
	return entity.Doctor{ID: id, Name: "Dr. Test"}
}

func TestSelectDoctor(t *testing.T) {
	candidates := []entity.Doctor{doctorWithID(1), doctorWithID(2), doctorWithID(3)}

	t.Run("picks the lowest id when all are free", func(t *testing.T) {
		doctor, err := SelectDoctor(candidates, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), doctor.ID)
	})

	t.Run("skips doctors booked at the slot", func(t *testing.T) {
		doctor, err := SelectDoctor(candidates, []int64{1, 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), doctor.ID)
	})

	t.Run("fails when every doctor is booked", func(t *testing.T) {
		_, err := SelectDoctor(candidates, []int64{1, 2, 3})
		assert.ErrorIs(t, err, ErrNoDoctorAvailable)
	})

	t.Run("fails when there are no candidates", func(t *testing.T) {
		_, err := SelectDoctor(nil, nil)
		assert.ErrorIs(t, err, ErrNoDoctorAvailable)
	})

	t.Run("selection is deterministic", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			doctor, err := SelectDoctor(candidates, []int64{1})
			require.NoError(t, err)
			assert.Equal(t, int64(2), doctor.ID)
		}
	})
}
