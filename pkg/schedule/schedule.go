package schedule

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jdziat/simple-days-schedules/pkg/core"
	"github.com/jdziat/simple-days-schedules/pkg/dayrange"
	"github.com/jdziat/simple-days-schedules/pkg/weekly"
)

// Dates returns the dates of r whose weekday is in s, in ascending order.
func Dates(r dayrange.DayRange, s weekly.Schedule) []time.Time {
	return r.Filter(s)
}

// Occurrences is the lazy form of Dates.
func Occurrences(r dayrange.DayRange, s weekly.Schedule) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := range r.All() {
			if s.ContainsDate(d) && !yield(d) {
				return
			}
		}
	}
}

// Schedule determines when something should next happen.
type Schedule interface {
	Next(from time.Time) time.Time
}

// weeklySchedule runs at a specific time on each scheduled weekday.
type weeklySchedule struct {
	days   weekly.Schedule
	hour   int
	minute int
	loc    *time.Location
}

// Weekly creates a schedule that runs at hour:minute UTC on every weekday in days.
// An empty days schedule never runs; Next returns the zero time.
// hour and minute are not range checked: like time.Date, values outside
// 0-23 and 0-59 roll over, so hour 25 on a Monday runs Tuesday at 01:00.
// Use Cron to reject such values.
func Weekly(days weekly.Schedule, hour, minute int) Schedule {
	return &weeklySchedule{days: days, hour: hour, minute: minute, loc: time.UTC}
}

// Daily creates a schedule that runs at a specific time each day.
func Daily(hour, minute int) Schedule {
	return Weekly(weekly.Of(core.Monday, core.Tuesday, core.Wednesday, core.Thursday,
		core.Friday, core.Saturday, core.Sunday), hour, minute)
}

func (s *weeklySchedule) Next(from time.Time) time.Time {
	if s.days.IsEmpty() {
		return time.Time{}
	}
	from = from.In(s.loc)

	// Eight days covers a single-day schedule whose time today has passed.
	for i := 0; i <= core.DaysPerWeek; i++ {
		next := time.Date(from.Year(), from.Month(), from.Day()+i, s.hour, s.minute, 0, 0, s.loc)
		if next.After(from) && s.days.ContainsDate(next) {
			return next
		}
	}
	return time.Time{}
}

// CronSpec renders a five-field cron expression running at hour:minute on
// the weekdays in days. Cron numbers weekdays from Sunday = 0.
func CronSpec(days weekly.Schedule, hour, minute int) (string, error) {
	if days.IsEmpty() {
		return "", core.ErrEmptySchedule
	}
	dow := make([]int, 0, days.Len())
	for _, d := range days.Days() {
		dow = append(dow, int(d.TimeWeekday()))
	}
	slices.Sort(dow)

	fields := make([]string, len(dow))
	for i, n := range dow {
		fields[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("%d %d * * %s", minute, hour, strings.Join(fields, ",")), nil
}

// cronSchedule wraps a cron expression.
type cronSchedule struct {
	schedule cron.Schedule
}

// Cron creates a cron-backed schedule equivalent to Weekly(days, hour, minute)
// for hour in 0-23 and minute in 0-59. Values outside those ranges are an error.
func Cron(days weekly.Schedule, hour, minute int) (Schedule, error) {
	spec, err := CronSpec(days, hour, minute)
	if err != nil {
		return nil, err
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse("CRON_TZ=UTC " + spec)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}
	return &cronSchedule{schedule: schedule}, nil
}

func (s *cronSchedule) Next(from time.Time) time.Time {
	return s.schedule.Next(from)
}
