package core

import "time"

// Weekday is a day of the week numbered from Monday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the number of weekdays a schedule can hold.
const DaysPerWeek = 7

// Table is a weekday naming, index-aligned with Weekday.
type Table [DaysPerWeek]string

// Canonical tables.
var (
	Abbr1     = Table{"M", "T", "W", "R", "F", "S", "U"}
	Abbr2     = Table{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
	Abbr3     = Table{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	Abbr3Caps = Table{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}
	Names     = Table{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
)

// Tables lists the canonical tables in token resolution order.
var Tables = []Table{Abbr1, Abbr2, Abbr3, Abbr3Caps, Names}

// Valid reports whether w is Monday through Sunday.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// Bit returns the mask bit for w.
func (w Weekday) Bit() uint8 {
	return 1 << uint(w)
}

// In renders w using table t.
func (w Weekday) In(t Table) string {
	if !w.Valid() {
		return ""
	}
	return t[w]
}

func (w Weekday) String() string {
	return w.In(Names)
}

// TimeWeekday converts w to Go's Sunday-first numbering.
func (w Weekday) TimeWeekday() time.Weekday {
	return time.Weekday((int(w) + 1) % DaysPerWeek)
}

// FromTimeWeekday converts Go's Sunday-first numbering to a Weekday.
func FromTimeWeekday(d time.Weekday) Weekday {
	return Weekday((int(d) + DaysPerWeek - 1) % DaysPerWeek)
}

// WeekdayOf returns the weekday of t.
func WeekdayOf(t time.Time) Weekday {
	return FromTimeWeekday(t.Weekday())
}

// Lookup resolves a weekday token against the canonical tables.
// Matching is exact and case-sensitive; the first table that contains
// the token wins.
func Lookup(token string) (Weekday, bool) {
	for _, table := range Tables {
		for i, name := range table {
			if name == token {
				return Weekday(i), true
			}
		}
	}
	return 0, false
}
