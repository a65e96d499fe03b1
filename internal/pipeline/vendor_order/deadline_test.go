package vendor_order

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		in       string
		wantH    int
		wantM    int
		wantOK   bool
	}{
		{in: "11:00 AM", wantH: 11, wantM: 0, wantOK: true},
		{in: "2:30 pm", wantH: 14, wantM: 30, wantOK: true},
		{in: "12:15 AM", wantH: 0, wantM: 15, wantOK: true},
		{in: "12:00 PM", wantH: 12, wantM: 0, wantOK: true},
		{in: " 9:05PM ", wantH: 21, wantM: 5, wantOK: true},
		{in: "13:00 PM"},
		{in: "0:30 AM"},
		{in: "10:75 AM"},
		{in: "10 AM"},
		{in: "14:00"},
		{in: ""},
		{in: "noon"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, ok := ParseDeadline(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantM, m)
		})
	}
}

func TestDeadlineClassification(t *testing.T) {
	day := func(h, m int) time.Time { return time.Date(2024, 1, 8, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name        string
		now         time.Time
		wantMinutes int
		wantTier    domain.PriorityTier
		wantOverdue bool
		wantLabel   string
	}{
		{name: "fifteen minutes left", now: day(10, 45), wantMinutes: 15, wantTier: domain.PriorityUrgent, wantLabel: "15m"},
		{name: "overdue by an hour", now: day(12, 0), wantMinutes: -60, wantTier: domain.PriorityUrgent, wantOverdue: true, wantLabel: "Overdue 1h"},
		{name: "exactly thirty", now: day(10, 30), wantMinutes: 30, wantTier: domain.PriorityUrgent, wantLabel: "30m"},
		{name: "thirty one is soon", now: day(10, 29), wantMinutes: 31, wantTier: domain.PrioritySoon, wantLabel: "31m"},
		{name: "two hours is soon", now: day(9, 0), wantMinutes: 120, wantTier: domain.PrioritySoon, wantLabel: "2h"},
		{name: "beyond two hours", now: day(7, 30), wantMinutes: 210, wantTier: domain.PriorityToday, wantLabel: "3h 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, ok := MinutesUntilDeadline("11:00 AM", tt.now)
			require.True(t, ok)
			assert.Equal(t, tt.wantMinutes, minutes)
			assert.Equal(t, tt.wantTier, ClassifyPriority(minutes, ok))
			assert.Equal(t, tt.wantOverdue, minutes < 0)
			assert.Equal(t, tt.wantLabel, CountdownLabel(minutes, ok))
		})
	}

	assert.Equal(t, domain.PriorityToday, ClassifyPriority(0, false))
	assert.Equal(t, "No deadline", CountdownLabel(0, false))
}

func TestBuildReminders_Filters(t *testing.T) {
	// Monday 10:00
	now := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	rules := []domain.VendorScheduleRule{
		{VendorKey: "near", OrderWeekday: intPtr(1), OrderDeadline: "11:00 AM", DeliveryWeekdays: []int{2}},
		{VendorKey: "far", OrderWeekday: intPtr(1), OrderDeadline: "5:00 PM"},
		{VendorKey: "late", OrderWeekday: intPtr(1), OrderDeadline: "9:00 AM"},
		{VendorKey: "open", OrderWeekday: intPtr(1), OrderDeadline: "whenever"},
		{VendorKey: "tomorrow", OrderWeekday: intPtr(2), OrderDeadline: "8:00 am"},
		{VendorKey: "other", OrderWeekday: intPtr(4), OrderDeadline: "8:00 AM"},
		{VendorKey: "unset", OrderDeadline: "8:00 AM"},
	}

	keys := func(rs []domain.PriorityReminder) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.VendorKey)
		}
		return out
	}

	tests := []struct {
		name  string
		input ReminderInput
		want  []string
	}{
		{name: "defaults", input: ReminderInput{Now: now}, want: []string{"near", "late"}},
		{name: "no deadline opt in", input: ReminderInput{Now: now, IncludeNoDeadline: true}, want: []string{"near", "late", "open"}},
		{name: "include all", input: ReminderInput{Now: now, IncludeAll: true}, want: []string{"near", "far", "late", "open"}},
		{name: "wider lookahead", input: ReminderInput{Now: now, LookaheadHours: floatPtr(8)}, want: []string{"near", "far", "late"}},
		{name: "negative lookahead keeps overdue only", input: ReminderInput{Now: now, LookaheadHours: floatPtr(-3)}, want: []string{"late"}},
		{name: "upcoming", input: ReminderInput{Now: now, IncludeUpcoming: true}, want: []string{"near", "late", "tomorrow"}},
		{name: "huge lookahead capped", input: ReminderInput{Now: now, LookaheadHours: floatPtr(1e20)}, want: []string{"near", "far", "late"}},
		{name: "infinite lookahead capped", input: ReminderInput{Now: now, LookaheadHours: floatPtr(math.Inf(1))}, want: []string{"near", "far", "late"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Schedules = rules
			assert.Equal(t, tt.want, keys(BuildReminders(tt.input)))
		})
	}
}

func TestLookaheadMinutes(t *testing.T) {
	assert.Equal(t, 120, lookaheadMinutes(nil))
	assert.Equal(t, 0, lookaheadMinutes(floatPtr(math.NaN())))
	assert.Equal(t, 24*60, lookaheadMinutes(floatPtr(math.Inf(1))))
	assert.Equal(t, 0, lookaheadMinutes(floatPtr(math.Inf(-1))))
}

func TestBuildReminders_Upcoming(t *testing.T) {
	now := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	got := BuildReminders(ReminderInput{
		Now:             now,
		IncludeUpcoming: true,
		Schedules: []domain.VendorScheduleRule{
			{VendorKey: "tomorrow", DisplayName: "Tomorrow Foods", OrderWeekday: intPtr(2), OrderDeadline: "8:00 am"},
		},
	})

	require.Len(t, got, 1)
	assert.Equal(t, domain.PriorityUpcoming, got[0].Priority)
	assert.Equal(t, "Upcoming", got[0].PriorityLabel)
	assert.Nil(t, got[0].MinutesUntilDeadline)
	assert.Equal(t, "Tomorrow 8:00 AM", got[0].Countdown)
	assert.Equal(t, "Tomorrow Foods", got[0].VendorName)
	assert.Equal(t, "As needed", got[0].NextDelivery)
}
