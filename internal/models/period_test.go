package models

import (
	"testing"
)

func TestPeriod_String(t *testing.T) {
	tests := []struct {
		name string
		p    Period
		want string
	}{
		{"Daily", PeriodDaily, "Daily"},
		{"Weekly", PeriodWeekly, "Weekly"},
		{"Monthly", PeriodMonthly, "Monthly"},
		{"Unknown", Period(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Errorf("Period.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPeriod_Days(t *testing.T) {
	tests := []struct {
		name string
		p    Period
		want int
	}{
		{"Daily", PeriodDaily, 1},
		{"Weekly", PeriodWeekly, 7},
		{"Monthly", PeriodMonthly, 30},
		{"Unknown", Period(99), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Days(); got != tt.want {
				t.Errorf("Period.Days() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPeriod_Next(t *testing.T) {
	tests := []struct {
		name string
		p    Period
		want Period
	}{
		{"Daily -> Weekly", PeriodDaily, PeriodWeekly},
		{"Weekly -> Monthly", PeriodWeekly, PeriodMonthly},
		{"Monthly -> Daily", PeriodMonthly, PeriodDaily},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Next(); got != tt.want {
				t.Errorf("Period.Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPeriod_Prev(t *testing.T) {
	tests := []struct {
		p    Period
		want Period
	}{
		{PeriodDaily, PeriodMonthly},
		{PeriodWeekly, PeriodDaily},
		{PeriodMonthly, PeriodWeekly},
	}
	for _, tt := range tests {
		if got := tt.p.Prev(); got != tt.want {
			t.Errorf("%v.Prev() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in     string
		want   Period
		wantOK bool
	}{
		{"daily", PeriodDaily, true},
		{"week", PeriodWeekly, true},
		{"30", PeriodMonthly, true},
		{"yearly", PeriodDaily, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePeriod(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParsePeriod(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
