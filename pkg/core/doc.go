// Package core provides the fundamental types shared by the days packages.
//
// This package contains:
//   - Weekday, numbered Monday-first (0=Monday .. 6=Sunday)
//   - The canonical weekday name and abbreviation tables used for parsing and rendering
//   - Date truncation helpers
//   - Error types for range and schedule validation
//
// Most users should import the root package github.com/jdziat/simple-days-schedules
// instead of this package directly.
package core
