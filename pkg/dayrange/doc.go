// Package dayrange provides an inclusive range of calendar dates.
//
// Dates are truncated to their calendar day on the way in, so a DayRange
// built from date-times covers the same days as one built from midnights.
//
// Most users should import the root package github.com/jdziat/simple-days-schedules
// which re-exports these types.
package dayrange
