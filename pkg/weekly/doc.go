// Package weekly provides the weekly schedule value type.
//
// A Schedule is a subset of the seven weekdays stored as a 7-bit mask:
// bit 0 is Monday and bit 6 is Sunday, so every schedule serializes to a
// single byte in the range 0-127.
//
// Schedules are built from an Input:
//   - Mask for an integer bitmask
//   - Names, Indexes or Tokens for sequences of weekday tokens
//   - Text for strings: a digit-only mask, a list literal like "['Mon', 'Fri']",
//     or comma separated tokens like "M, Tu, Fri"
//
// Schedules are comparable values and safe to share between goroutines.
//
// Most users should import the root package github.com/jdziat/simple-days-schedules
// which re-exports these types.
package weekly
