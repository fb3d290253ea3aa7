package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/dustin/go-humanize"

	"github.com/vukan322/devcards/internal/core"
)

const (
	cardWidth   = 300
	cardPadding = 20

	languageBaseHeight = 150
	languageRowHeight  = 25
	languageRowTop     = 60
	languageRowPitch   = 35

	activityHeight = 160
)

// Theme is the gruvbox-dark palette shared by both cards.
type Theme struct {
	Background string
	Foreground string
	Header     string
	Subtext    string
	Border     string
	BarTrack   string
}

var (
	LanguageTheme = Theme{
		Background: "#282828",
		Foreground: "#ebdbb2",
		Header:     "#fabd2f",
		Subtext:    "#a89984",
		Border:     "#3c3836",
		BarTrack:   "#3c3836",
	}

	ActivityTheme = Theme{
		Background: "#282828",
		Foreground: "#ebdbb2",
		Header:     "#fe8019",
		Subtext:    "#a89984",
		Border:     "#3c3836",
	}
)

const (
	totalAccent   = "#8ec07c"
	currentAccent = "#fabd2f"
	longestAccent = "#fb4934"
)

//go:embed templates/languages.svg.tmpl
var languagesTemplate string

//go:embed templates/activity.svg.tmpl
var activityTemplate string

var funcs = template.FuncMap{
	"subInt": func(a, b int) int { return a - b },
	"pct":    func(f float64) string { return fmt.Sprintf("%.1f%%", f) },
	"barf": func(track int, pct float64) string {
		return fmt.Sprintf("%.2f", float64(track)*pct/100.0)
	},
}

var (
	languagesTmpl = template.Must(template.New("languages").Funcs(funcs).Parse(languagesTemplate))
	activityTmpl  = template.Must(template.New("activity").Funcs(funcs).Parse(activityTemplate))
)

type languageRow struct {
	Y int
	core.LanguageStat
}

type languagesViewModel struct {
	Width      int
	Height     int
	Padding    int
	TrackWidth int
	Title      string
	Theme      Theme
	Rows       []languageRow
}

type statCell struct {
	X      int
	Label  string
	Value  string
	Accent string
}

type activityViewModel struct {
	Width   int
	Height  int
	Padding int
	Title   string
	Theme   Theme
	Cells   []statCell
}

func LanguageCardHeight(n int) int {
	return languageBaseHeight + languageRowHeight*n
}

// LanguageCard renders one row per language, in the order given.
func LanguageCard(langs []core.LanguageStat) ([]byte, error) {
	vm := languagesViewModel{
		Width:      cardWidth,
		Height:     LanguageCardHeight(len(langs)),
		Padding:    cardPadding,
		TrackWidth: cardWidth - 2*cardPadding,
		Title:      "Top Languages",
		Theme:      LanguageTheme,
		Rows:       make([]languageRow, 0, len(langs)),
	}
	for i, ls := range langs {
		vm.Rows = append(vm.Rows, languageRow{
			Y:            languageRowTop + i*languageRowPitch,
			LanguageStat: ls,
		})
	}

	return execute(languagesTmpl, vm)
}

func ActivityCard(stats core.ActivityStats) ([]byte, error) {
	vm := activityViewModel{
		Width:   cardWidth,
		Height:  activityHeight,
		Padding: cardPadding,
		Title:   "GitHub Activity",
		Theme:   ActivityTheme,
		Cells: []statCell{
			{X: cardPadding, Label: "Total Contributions", Value: humanize.Comma(int64(stats.TotalContributions)), Accent: totalAccent},
			{X: cardPadding + 110, Label: "Current Streak", Value: fmt.Sprint(stats.CurrentStreak), Accent: currentAccent},
			{X: cardPadding + 200, Label: "Longest Streak", Value: fmt.Sprint(stats.LongestStreak), Accent: longestAccent},
		},
	}

	return execute(activityTmpl, vm)
}

func execute(tmpl *template.Template, vm any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render %s svg: %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
