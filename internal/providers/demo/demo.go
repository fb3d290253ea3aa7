package demo

import (
	"context"
	"time"

	"github.com/vukan322/devcards/internal/core"
)

// DemoProvider serves a fixed dataset so cards can be rendered without a token.
type DemoProvider struct {
	now func() time.Time
}

func New() *DemoProvider {
	return &DemoProvider{now: time.Now}
}

func (d *DemoProvider) Name() string {
	return "demo"
}

func (d *DemoProvider) Fetch(ctx context.Context, handle string) (core.Snapshot, error) {
	today := core.Day(d.now())

	// Two weeks ending today: a four-day gap, then an unbroken run of nine days.
	var days []core.ContributionDay
	total := 0
	for i := 13; i >= 0; i-- {
		count := 0
		if i < 9 || i > 12 {
			count = 1 + i%4
		}
		total += count
		days = append(days, core.ContributionDay{Date: today.AddDate(0, 0, -i), Count: count})
	}

	return core.Snapshot{
		Username: handle,
		Calendar: core.ContributionCalendar{
			TotalContributions: total,
			Weeks: []core.ContributionWeek{
				{Days: days[:7]},
				{Days: days[7:]},
			},
		},
		Repositories: []core.Repository{
			{Name: "devcards", Languages: []core.LanguageEdge{
				{Name: "Go", Color: "#00ADD8", Size: 48000},
				{Name: "Makefile", Color: "#427819", Size: 900},
			}},
			{Name: "dotfiles", Languages: []core.LanguageEdge{
				{Name: "Lua", Color: "#000080", Size: 12000},
				{Name: "Shell", Color: "#89e051", Size: 4200},
			}},
			{Name: "site", Languages: []core.LanguageEdge{
				{Name: "TypeScript", Color: "#3178c6", Size: 21000},
				{Name: "CSS", Color: "#563d7c", Size: 3100},
				{Name: "Go", Size: 2000},
			}},
		},
	}, nil
}
