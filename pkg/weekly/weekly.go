package weekly

import (
	"math/bits"
	"strings"
	"time"

	"github.com/jdziat/simple-days-schedules/pkg/core"
)

// Schedule is a set of weekdays. The zero value is the empty schedule.
type Schedule struct {
	mask uint8
}

// New builds a schedule from in. A nil input is the empty schedule.
func New(in Input) (Schedule, error) {
	if in == nil {
		return Schedule{}, nil
	}
	m, err := in.mask()
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{mask: m}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(in Input) Schedule {
	s, err := New(in)
	if err != nil {
		panic("invalid weekly schedule: " + err.Error())
	}
	return s
}

// FromByte builds a schedule from an integer mask in [0, 127].
func FromByte(b int) (Schedule, error) {
	return New(Mask(b))
}

// Parse builds a schedule from its textual form. See Text.
func Parse(s string) (Schedule, error) {
	return New(Text(s))
}

// Of builds a schedule from weekdays. Invalid weekdays are ignored.
func Of(days ...core.Weekday) Schedule {
	var m uint8
	for _, d := range days {
		if d.Valid() {
			m |= d.Bit()
		}
	}
	return Schedule{mask: m}
}

// FromTimeWeekdays builds a schedule from Go weekdays.
func FromTimeWeekdays(days ...time.Weekday) Schedule {
	var m uint8
	for _, d := range days {
		m |= core.FromTimeWeekday(d).Bit()
	}
	return Schedule{mask: m}
}

// Byte returns the mask: bit i is set iff weekday i is in the schedule.
func (s Schedule) Byte() uint8 {
	return s.mask
}

// Len returns the number of weekdays in the schedule.
func (s Schedule) Len() int {
	return bits.OnesCount8(s.mask)
}

// IsEmpty reports whether the schedule has no weekdays.
func (s Schedule) IsEmpty() bool {
	return s.mask == 0
}

// Days returns the scheduled weekdays, Monday first.
func (s Schedule) Days() []core.Weekday {
	days := make([]core.Weekday, 0, s.Len())
	for d := core.Monday; d <= core.Sunday; d++ {
		if s.mask&d.Bit() != 0 {
			days = append(days, d)
		}
	}
	return days
}

// List renders the scheduled weekdays, Monday first, using one-letter
// abbreviations unless WithTable is given.
func (s Schedule) List(opts ...Option) []string {
	o := applyOptions(core.Abbr1, opts)
	days := s.Days()
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.In(o.Table))
	}
	return out
}

// Words joins the scheduled weekdays using full names unless WithTable is given.
func (s Schedule) Words(opts ...Option) string {
	o := applyOptions(core.Names, opts)
	return strings.Join(s.List(WithTable(o.Table)), o.Separator)
}

// String renders the schedule as a list literal, e.g. ['M', 'T'].
// The result parses back to an equal schedule.
func (s Schedule) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, name := range s.List() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(name)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

// ContainsWeekday reports whether d is in the schedule.
func (s Schedule) ContainsWeekday(d core.Weekday) bool {
	return d.Valid() && s.mask&d.Bit() != 0
}

// ContainsTimeWeekday reports whether the Go weekday d is in the schedule.
func (s Schedule) ContainsTimeWeekday(d time.Weekday) bool {
	return s.ContainsWeekday(core.FromTimeWeekday(d))
}

// ContainsDate reports whether the weekday of t is in the schedule.
func (s Schedule) ContainsDate(t time.Time) bool {
	return s.ContainsWeekday(core.WeekdayOf(t))
}

// ContainsIndex reports whether weekday index i is in the schedule.
func (s Schedule) ContainsIndex(i int) bool {
	return s.ContainsWeekday(core.Weekday(i))
}

// ContainsToken reports whether token names a weekday in the schedule.
// Unrecognized tokens are not contained.
func (s Schedule) ContainsToken(token string) bool {
	d, ok := core.Lookup(token)
	if !ok {
		getLogger().Debug("unrecognized weekday token", "token", token)
		return false
	}
	return s.ContainsWeekday(d)
}

// Equal reports whether s and other hold the same weekdays.
func (s Schedule) Equal(other Schedule) bool {
	return s.mask == other.mask
}

// Matches reports whether in describes the same weekdays as s. Inputs that
// fail to parse never match. A nil input matches the empty schedule.
func (s Schedule) Matches(in Input) bool {
	other, err := New(in)
	if err != nil {
		getLogger().Debug("schedule comparison input rejected", "error", err)
		return false
	}
	return s.Equal(other)
}

// Union returns the weekdays in either schedule.
func (s Schedule) Union(other Schedule) Schedule {
	return Schedule{mask: s.mask | other.mask}
}

// Intersect returns the weekdays in both schedules.
func (s Schedule) Intersect(other Schedule) Schedule {
	return Schedule{mask: s.mask & other.mask}
}

// Complement returns the weekdays not in s.
func (s Schedule) Complement() Schedule {
	return Schedule{mask: ^s.mask & MaxMask}
}
