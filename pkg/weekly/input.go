package weekly

import (
	"strconv"
	"strings"

	"github.com/jdziat/simple-days-schedules/pkg/core"
)

// MaxMask is the mask with every weekday set.
const MaxMask = 1<<core.DaysPerWeek - 1

// Input is a value a Schedule can be built from. The set of variants is
// closed: Mask, Names, Indexes, Tokens and Text.
type Input interface {
	mask() (uint8, error)
}

// Mask is an integer bitmask, bit i set for weekday i.
type Mask int

func (m Mask) mask() (uint8, error) {
	if m < 0 || m > MaxMask {
		return 0, core.NewParseError(strconv.Itoa(int(m)), core.ErrInvalidMask)
	}
	return uint8(m), nil
}

// Names is a sequence of weekday names or abbreviations.
type Names []string

func (n Names) mask() (uint8, error) {
	var m uint8
	for _, name := range n {
		day, err := Name(name).weekday()
		if err != nil {
			return 0, err
		}
		m |= day.Bit()
	}
	return m, nil
}

// Indexes is a sequence of weekday indexes, 0 (Monday) through 6 (Sunday).
type Indexes []int

func (x Indexes) mask() (uint8, error) {
	var m uint8
	for _, i := range x {
		day, err := Index(i).weekday()
		if err != nil {
			return 0, err
		}
		m |= day.Bit()
	}
	return m, nil
}

// Token is a single weekday: an Index or a Name.
type Token interface {
	weekday() (core.Weekday, error)
}

// Index is a weekday index token.
type Index int

func (i Index) weekday() (core.Weekday, error) {
	day := core.Weekday(i)
	if !day.Valid() {
		return 0, core.NewParseError(strconv.Itoa(int(i)), core.ErrInvalidToken)
	}
	return day, nil
}

// Name is a weekday name or abbreviation token.
type Name string

func (n Name) weekday() (core.Weekday, error) {
	day, ok := core.Lookup(string(n))
	if !ok {
		return 0, core.NewParseError(string(n), core.ErrInvalidToken)
	}
	return day, nil
}

// Tokens is a sequence mixing index and name tokens.
type Tokens []Token

func (t Tokens) mask() (uint8, error) {
	var m uint8
	for _, tok := range t {
		if tok == nil {
			return 0, core.NewParseError("<nil>", core.ErrInvalidToken)
		}
		day, err := tok.weekday()
		if err != nil {
			return 0, err
		}
		m |= day.Bit()
	}
	return m, nil
}

// Text is a textual schedule. Accepted shapes, after trimming:
//   - empty: the empty schedule
//   - digits only: an integer mask, e.g. "10"
//   - a list literal of quoted names or integers, e.g. "['Tue', 'Wed', 0]"
//   - comma separated tokens, e.g. "M, Tu, Fri" or "0, 6"; empty tokens are
//     dropped and digit tokens are weekday indexes, as in list literals
//
// A lone digit string such as "6" is always a mask, not an index.
type Text string

func (t Text) mask() (uint8, error) {
	s := strings.TrimSpace(string(t))
	switch {
	case s == "":
		return 0, nil
	case isDigits(s):
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, core.NewParseError(s, core.ErrInvalidMask)
		}
		return Mask(n).mask()
	case strings.HasPrefix(s, "["):
		tokens, ok := parseList(s)
		if !ok {
			return 0, core.NewParseError(s, core.ErrInvalidListSyntax)
		}
		return tokens.mask()
	}

	var tokens Tokens
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
		case isDigits(part):
			i, err := strconv.Atoi(part)
			if err != nil {
				return 0, core.NewParseError(part, core.ErrInvalidToken)
			}
			tokens = append(tokens, Index(i))
		default:
			tokens = append(tokens, Name(part))
		}
	}
	return tokens.mask()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseList scans a bracketed list of quoted strings and integer literals.
// A trailing comma is allowed; bare words are not.
func parseList(s string) (Tokens, bool) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, false
	}
	body := strings.TrimSpace(s[1 : len(s)-1])

	tokens := Tokens{}
	for body != "" {
		var rest string
		switch c := body[0]; {
		case c == '\'' || c == '"':
			end := strings.IndexByte(body[1:], c)
			if end < 0 {
				return nil, false
			}
			tokens = append(tokens, Name(body[1:end+1]))
			rest = body[end+2:]
		case c == '-' || c == '+' || isDigit(c):
			n := 1
			for n < len(body) && isDigit(body[n]) {
				n++
			}
			v, err := strconv.Atoi(body[:n])
			if err != nil {
				return nil, false
			}
			tokens = append(tokens, Index(v))
			rest = body[n:]
		default:
			return nil, false
		}

		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}
		if rest[0] != ',' {
			return nil, false
		}
		body = strings.TrimSpace(rest[1:])
	}
	return tokens, true
}
