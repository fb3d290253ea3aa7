package core

import "time"

type ContributionDay struct {
	Date  time.Time
	Count int
}

type ContributionWeek struct {
	Days []ContributionDay
}

type ContributionCalendar struct {
	TotalContributions int
	Weeks              []ContributionWeek
}

type LanguageEdge struct {
	Name  string
	Color string
	Size  int64
}

type Repository struct {
	Name      string
	Languages []LanguageEdge
}

// LanguageStat is a language aggregated over every repository of a user.
type LanguageStat struct {
	Name       string
	Color      string
	Size       int64
	Percentage float64
}

type ActivityStats struct {
	TotalContributions int
	CurrentStreak      int
	LongestStreak      int
}

// Snapshot is everything a provider returns for one user.
type Snapshot struct {
	Username     string
	Calendar     ContributionCalendar
	Repositories []Repository
}
