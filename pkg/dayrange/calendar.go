package dayrange

import (
	"time"

	"github.com/jinzhu/now"
)

var mondayFirst = &now.Config{WeekStartDay: time.Monday}

// Week returns the Monday through Sunday week containing t.
func Week(t time.Time) DayRange {
	n := mondayFirst.With(t)
	return Must(n.BeginningOfWeek(), n.EndOfWeek())
}

// Month returns the calendar month containing t.
func Month(t time.Time) DayRange {
	n := mondayFirst.With(t)
	return Must(n.BeginningOfMonth(), n.EndOfMonth())
}
