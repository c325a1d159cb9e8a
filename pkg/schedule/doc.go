// Package schedule combines day ranges with weekly schedules.
//
// This package includes:
//   - Dates() and Occurrences() for the dates of a range that fall on a schedule's weekdays
//   - Schedule interface for computing the next run time
//   - Weekly() for a time of day on a set of weekdays
//   - Daily() for a time of day on every weekday
//   - CronSpec() and Cron() for cron expression-based schedules
//
// Most users should import the root package github.com/jdziat/simple-days-schedules
// which re-exports these functions.
package schedule
