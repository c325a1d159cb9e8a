package dayrange

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/jdziat/simple-days-schedules/pkg/core"
)

// DayRange is an inclusive span of calendar dates with Start <= End.
type DayRange struct {
	start time.Time
	end   time.Time
}

// Matcher selects dates. weekly.Schedule satisfies it.
type Matcher interface {
	ContainsDate(t time.Time) bool
}

// New creates a range from start to end inclusive. Both bounds are
// truncated to their date; end before start is ErrInvalidRange.
func New(start, end time.Time) (DayRange, error) {
	var r DayRange
	if err := r.Reset(start, end); err != nil {
		return DayRange{}, err
	}
	return r, nil
}

// Must is like New but panics on an invalid range.
func Must(start, end time.Time) DayRange {
	r, err := New(start, end)
	if err != nil {
		panic(err.Error())
	}
	return r
}

// Reset replaces both bounds. The range is left unchanged on error.
func (r *DayRange) Reset(start, end time.Time) error {
	start, end = core.ToDate(start), core.ToDate(end)
	if end.Before(start) {
		return fmt.Errorf("%w: start(%s) end(%s)", core.ErrInvalidRange,
			start.Format(core.DateLayout), end.Format(core.DateLayout))
	}
	r.start, r.end = start, end
	return nil
}

// Start returns the first date of the range.
func (r DayRange) Start() time.Time { return r.start }

// End returns the last date of the range.
func (r DayRange) End() time.Time { return r.end }

// Len returns the number of days in the range, counting both ends.
func (r DayRange) Len() int {
	return core.DaysBetween(r.start, r.end) + 1
}

// All yields every date from Start to End in ascending order. Each call
// to the returned sequence starts over from Start.
func (r DayRange) All() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Dates returns every date in the range.
func (r DayRange) Dates() []time.Time {
	return slices.Collect(r.All())
}

// Contains reports whether the date of t falls within the range.
func (r DayRange) Contains(t time.Time) bool {
	d := core.ToDate(t)
	return !d.Before(r.start) && !d.After(r.end)
}

// Slice returns the sub-range covering dates i through j-1, zero-based.
// i is clamped to 0 and j to Len. An empty result is ErrInvalidRange.
func (r DayRange) Slice(i, j int) (DayRange, error) {
	i = max(i, 0)
	j = min(j, r.Len())
	if i >= j {
		return DayRange{}, fmt.Errorf("%w: empty slice [%d:%d] of %s", core.ErrInvalidRange, i, j, r)
	}
	return New(r.start.AddDate(0, 0, i), r.start.AddDate(0, 0, j-1))
}

// Filter returns the dates in the range selected by m, in order.
func (r DayRange) Filter(m Matcher) []time.Time {
	var out []time.Time
	for d := range r.All() {
		if m.ContainsDate(d) {
			out = append(out, d)
		}
	}
	return out
}

// Equal reports whether both ranges have the same bounds.
func (r DayRange) Equal(other DayRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r DayRange) String() string {
	return fmt.Sprintf("<DayRange %s - %s>", r.start.Format(core.DateLayout), r.end.Format(core.DateLayout))
}
