package weekly

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jdziat/simple-days-schedules/pkg/core"
)

// Value implements driver.Valuer. Schedules are stored as their integer mask.
func (s Schedule) Value() (driver.Value, error) {
	return int64(s.mask), nil
}

// Scan implements sql.Scanner for integer and text columns.
func (s *Schedule) Scan(src any) error {
	var in Input
	switch v := src.(type) {
	case nil:
		*s = Schedule{}
		return nil
	case int64:
		if v < 0 || v > MaxMask {
			return core.NewParseError(strconv.FormatInt(v, 10), core.ErrInvalidMask)
		}
		in = Mask(v)
	case []byte:
		in = Text(string(v))
	case string:
		in = Text(v)
	default:
		return fmt.Errorf("weekly: cannot scan %T into Schedule", src)
	}

	parsed, err := New(in)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON encodes the schedule as its integer mask.
func (s Schedule) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(s.mask))), nil
}

// UnmarshalJSON accepts null, an integer mask, a string (see Text) or an
// array of weekday names and indexes.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return core.NewParseError("", core.ErrInvalidListSyntax)
	}

	var in Input
	switch data[0] {
	case 'n':
		in = nil
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		in = Text(text)
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return core.NewParseError(string(data), core.ErrInvalidListSyntax)
		}
		tokens := make(Tokens, 0, len(raw))
		for _, item := range raw {
			tok, err := jsonToken(item)
			if err != nil {
				return err
			}
			tokens = append(tokens, tok)
		}
		in = tokens
	default:
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return core.NewParseError(string(data), core.ErrInvalidMask)
		}
		in = Mask(n)
	}

	parsed, err := New(in)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func jsonToken(item json.RawMessage) (Token, error) {
	var name string
	if err := json.Unmarshal(item, &name); err == nil {
		return Name(name), nil
	}
	var i int
	if err := json.Unmarshal(item, &i); err == nil {
		return Index(i), nil
	}
	return nil, core.NewParseError(string(item), core.ErrInvalidToken)
}

// MarshalYAML encodes the schedule as a sequence of three-letter names.
func (s Schedule) MarshalYAML() (any, error) {
	return s.List(WithTable(core.Abbr3)), nil
}

// UnmarshalYAML accepts an integer mask, a string (see Text) or a
// sequence of weekday names and indexes.
func (s *Schedule) UnmarshalYAML(node *yaml.Node) error {
	var in Input
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			in = nil
		case "!!int":
			n, err := strconv.Atoi(node.Value)
			if err != nil {
				return core.NewParseError(node.Value, core.ErrInvalidMask)
			}
			in = Mask(n)
		default:
			in = Text(node.Value)
		}
	case yaml.SequenceNode:
		tokens := make(Tokens, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return core.NewParseError(item.Value, core.ErrInvalidListSyntax)
			}
			if item.Tag == "!!int" {
				i, err := strconv.Atoi(item.Value)
				if err != nil {
					return core.NewParseError(item.Value, core.ErrInvalidToken)
				}
				tokens = append(tokens, Index(i))
				continue
			}
			tokens = append(tokens, Name(item.Value))
		}
		in = tokens
	default:
		return fmt.Errorf("%w: unsupported YAML node at line %d", core.ErrInvalidListSyntax, node.Line)
	}

	parsed, err := New(in)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
