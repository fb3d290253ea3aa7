package core

import "sort"

const (
	TopLanguages = 5

	// DefaultLanguageColor is used when the first edge seen for a language has no color.
	DefaultLanguageColor = "#ccc"
)

// AggregateLanguages sums language sizes across repos and returns the largest
// TopLanguages entries, sorted by size descending.
func AggregateLanguages(repos []Repository) []LanguageStat {
	langs := rankLanguages(repos)
	if len(langs) > TopLanguages {
		langs = langs[:TopLanguages]
	}
	return langs
}

func rankLanguages(repos []Repository) []LanguageStat {
	totals := make(map[string]*LanguageStat)
	var grand int64

	for _, r := range repos {
		for _, edge := range r.Languages {
			ls, ok := totals[edge.Name]
			if !ok {
				color := edge.Color
				if color == "" {
					color = DefaultLanguageColor
				}
				ls = &LanguageStat{Name: edge.Name, Color: color}
				totals[edge.Name] = ls
			}
			ls.Size += edge.Size
			grand += edge.Size
		}
	}

	// Languages that exist but weigh nothing carry no usable share.
	if grand == 0 {
		return nil
	}

	langs := make([]LanguageStat, 0, len(totals))
	for _, ls := range totals {
		ls.Percentage = float64(ls.Size) / float64(grand) * 100.0
		langs = append(langs, *ls)
	}

	sort.Slice(langs, func(i, j int) bool {
		return langs[i].Size > langs[j].Size
	})

	return langs
}
