package domain

import "time"

// Shift identifies one of the three plant shifts.
type Shift int

const (
	ShiftFirst  Shift = 1
	ShiftSecond Shift = 2
	ShiftThird  Shift = 3
)

// Shift bands in minutes since local midnight, inclusive.
const (
	firstShiftStart  = 6 * 60     // 06:00
	firstShiftEnd    = 14*60 + 29 // 14:29
	secondShiftStart = 14*60 + 30 // 14:30
	secondShiftEnd   = 22*60 + 59 // 22:59
)

// ClassifyShift maps the wall-clock time of t (in t's location) to a shift.
// The third shift covers 23:00-05:59 and wraps across midnight.
func ClassifyShift(t time.Time) Shift {
	return ShiftForMinute(t.Hour()*60 + t.Minute())
}

// ShiftForMinute classifies a minute of the day (0-1439).
func ShiftForMinute(totalMinutes int) Shift {
	switch {
	case totalMinutes >= firstShiftStart && totalMinutes <= firstShiftEnd:
		return ShiftFirst
	case totalMinutes >= secondShiftStart && totalMinutes <= secondShiftEnd:
		return ShiftSecond
	default:
		return ShiftThird
	}
}

func (s Shift) IsValid() bool {
	return s >= ShiftFirst && s <= ShiftThird
}

// Window returns the shift's wall-clock start and end labels.
func (s Shift) Window() (start, end string) {
	switch s {
	case ShiftFirst:
		return "06:00", "14:29"
	case ShiftSecond:
		return "14:30", "22:59"
	default:
		return "23:00", "05:59"
	}
}
