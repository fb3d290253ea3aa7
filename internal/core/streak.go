package core

import (
	"sort"
	"time"
)

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FlattenCalendar returns the calendar's days in ascending date order.
func FlattenCalendar(weeks []ContributionWeek) []ContributionDay {
	var days []ContributionDay
	for _, w := range weeks {
		days = append(days, w.Days...)
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}

// CurrentStreak walks days (ascending) backwards from today. Days after today
// are ignored, and a zero count on today itself does not end the streak.
func CurrentStreak(days []ContributionDay, today time.Time) int {
	today = Day(today)

	streak := 0
	broken := false
	for i := len(days) - 1; i >= 0; i-- {
		d := Day(days[i].Date)
		if d.After(today) {
			continue
		}
		if days[i].Count > 0 {
			if !broken {
				streak++
			}
			continue
		}
		if !d.Equal(today) {
			broken = true
		}
	}
	return streak
}

// LongestStreak is the longest run of consecutive non-zero days, future days included.
func LongestStreak(days []ContributionDay) int {
	longest, run := 0, 0
	for _, d := range days {
		if d.Count <= 0 {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

func ComputeActivity(cal ContributionCalendar, today time.Time) ActivityStats {
	days := FlattenCalendar(cal.Weeks)
	return ActivityStats{
		TotalContributions: cal.TotalContributions,
		CurrentStreak:      CurrentStreak(days, today),
		LongestStreak:      LongestStreak(days),
	}
}
