package dayrange

import (
	"encoding/json"
	"time"
)

const isoDate = "2006-01-02"

type rangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MarshalJSON encodes the range as ISO dates.
func (r DayRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeJSON{Start: r.start.Format(isoDate), End: r.end.Format(isoDate)})
}

// UnmarshalJSON decodes ISO dates and validates the range.
func (r *DayRange) UnmarshalJSON(data []byte) error {
	var raw rangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := time.Parse(isoDate, raw.Start)
	if err != nil {
		return err
	}
	end, err := time.Parse(isoDate, raw.End)
	if err != nil {
		return err
	}
	return r.Reset(start, end)
}
