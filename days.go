// Package days provides inclusive day ranges and weekly schedules.
//
// This is the main package users should import. It re-exports all public
// types from the pkg/ packages for a clean API surface.
//
// Basic usage:
//
//	// A range of dates, both ends inclusive
//	r, _ := days.NewDayRange(start, end)
//
//	// A weekly schedule from names, a mask or text
//	fridays, _ := days.NewWeeklySchedule(days.Names{"F"})
//	stored := fridays.Byte() // 16, fits a single-byte column
//
//	// Dates in the range that fall on scheduled weekdays
//	for _, d := range days.DatesForWeeklySchedule(r, fridays) {
//	    fmt.Println(d.Format("2006-01-02"))
//	}
package days

import (
	"iter"
	"log/slog"
	"time"

	"github.com/jdziat/simple-days-schedules/pkg/core"
	"github.com/jdziat/simple-days-schedules/pkg/dayrange"
	"github.com/jdziat/simple-days-schedules/pkg/schedule"
	"github.com/jdziat/simple-days-schedules/pkg/weekly"
)

// Type aliases
type (
	// Weekday is a day of the week numbered from Monday = 0.
	Weekday = core.Weekday

	// Table is a weekday naming used for parsing and rendering.
	Table = core.Table

	// ParseError records the input that failed to parse into a schedule.
	ParseError = core.ParseError

	// DayRange is an inclusive span of calendar dates.
	DayRange = dayrange.DayRange

	// WeeklySchedule is a set of weekdays stored as a 7-bit mask.
	WeeklySchedule = weekly.Schedule

	// Input is a value a WeeklySchedule can be built from.
	Input = weekly.Input

	// Mask is an integer bitmask input.
	Mask = weekly.Mask

	// Names is a weekday name input.
	Names = weekly.Names

	// Indexes is a weekday index input.
	Indexes = weekly.Indexes

	// Tokens is a mixed name and index input.
	Tokens = weekly.Tokens

	// Token is a single Index or Name.
	Token = weekly.Token

	// Index is a weekday index token.
	Index = weekly.Index

	// Name is a weekday name token.
	Name = weekly.Name

	// Text is a textual schedule input.
	Text = weekly.Text

	// Option modifies RenderOptions.
	Option = weekly.Option

	// RenderOptions holds configuration for rendering a schedule.
	RenderOptions = weekly.RenderOptions

	// Schedule determines when something should next happen.
	Schedule = schedule.Schedule
)

// Weekday constants
const (
	Monday    = core.Monday
	Tuesday   = core.Tuesday
	Wednesday = core.Wednesday
	Thursday  = core.Thursday
	Friday    = core.Friday
	Saturday  = core.Saturday
	Sunday    = core.Sunday
)

// MaxMask is the mask with every weekday set.
const MaxMask = weekly.MaxMask

// Canonical tables
var (
	Abbr1     = core.Abbr1
	Abbr2     = core.Abbr2
	Abbr3     = core.Abbr3
	Abbr3Caps = core.Abbr3Caps
	DayNames  = core.Names
)

// Error variables
var (
	ErrInvalidRange      = core.ErrInvalidRange
	ErrInvalidMask       = core.ErrInvalidMask
	ErrInvalidToken      = core.ErrInvalidToken
	ErrInvalidListSyntax = core.ErrInvalidListSyntax
	ErrEmptySchedule     = core.ErrEmptySchedule
)

// NewDayRange creates a range from start to end inclusive.
func NewDayRange(start, end time.Time) (DayRange, error) {
	return dayrange.New(start, end)
}

// Week returns the Monday through Sunday week containing t.
func Week(t time.Time) DayRange {
	return dayrange.Week(t)
}

// Month returns the calendar month containing t.
func Month(t time.Time) DayRange {
	return dayrange.Month(t)
}

// NewWeeklySchedule builds a schedule from in.
func NewWeeklySchedule(in Input) (WeeklySchedule, error) {
	return weekly.New(in)
}

// ParseWeeklySchedule builds a schedule from its textual form.
func ParseWeeklySchedule(s string) (WeeklySchedule, error) {
	return weekly.Parse(s)
}

// WeeklyScheduleFromByte builds a schedule from an integer mask in [0, 127].
func WeeklyScheduleFromByte(b int) (WeeklySchedule, error) {
	return weekly.FromByte(b)
}

// WithTable renders weekdays using the given table.
func WithTable(t Table) Option {
	return weekly.WithTable(t)
}

// WithSeparator sets the separator used by WeeklySchedule.Words.
func WithSeparator(sep string) Option {
	return weekly.WithSeparator(sep)
}

// SetLogger sets the logger used for rejected comparison and membership inputs.
func SetLogger(l *slog.Logger) {
	weekly.SetLogger(l)
}

// DatesForWeeklySchedule returns the dates of r whose weekday is in s.
func DatesForWeeklySchedule(r DayRange, s WeeklySchedule) []time.Time {
	return schedule.Dates(r, s)
}

// Occurrences lazily yields the dates of r whose weekday is in s.
func Occurrences(r DayRange, s WeeklySchedule) iter.Seq[time.Time] {
	return schedule.Occurrences(r, s)
}

// Weekly creates a schedule that runs at hour:minute UTC on the weekdays in s.
func Weekly(s WeeklySchedule, hour, minute int) Schedule {
	return schedule.Weekly(s, hour, minute)
}

// Daily creates a schedule that runs at a specific time each day.
func Daily(hour, minute int) Schedule {
	return schedule.Daily(hour, minute)
}

// Cron creates a cron-backed schedule for the weekdays in s.
func Cron(s WeeklySchedule, hour, minute int) (Schedule, error) {
	return schedule.Cron(s, hour, minute)
}

// CronSpec renders the cron expression for the weekdays in s at hour:minute.
func CronSpec(s WeeklySchedule, hour, minute int) (string, error) {
	return schedule.CronSpec(s, hour, minute)
}
