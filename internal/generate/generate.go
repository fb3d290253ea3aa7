package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vukan322/devcards/internal/core"
	"github.com/vukan322/devcards/internal/output"
	"github.com/vukan322/devcards/internal/providers"
	"github.com/vukan322/devcards/internal/render"
)

type Options struct {
	Provider providers.Provider
	Writer   *output.Writer
	Username string
	Logger   *logrus.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type Result struct {
	Languages []core.LanguageStat
	Activity  core.ActivityStats
}

// Run fetches one snapshot, derives the card statistics, renders both cards
// and writes them. Any failure aborts the run.
func Run(ctx context.Context, opts Options) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	log.WithFields(logrus.Fields{
		"provider": opts.Provider.Name(),
		"user":     opts.Username,
	}).Info("fetching data")

	snap, err := opts.Provider.Fetch(ctx, opts.Username)
	if err != nil {
		return Result{}, fmt.Errorf("provider %s failed: %w", opts.Provider.Name(), err)
	}

	res := Result{
		Languages: core.AggregateLanguages(snap.Repositories),
		Activity:  core.ComputeActivity(snap.Calendar, now()),
	}

	names := make([]string, 0, len(res.Languages))
	for _, ls := range res.Languages {
		names = append(names, ls.Name)
	}
	log.WithFields(logrus.Fields{
		"repositories":   len(snap.Repositories),
		"total":          res.Activity.TotalContributions,
		"current_streak": res.Activity.CurrentStreak,
		"longest_streak": res.Activity.LongestStreak,
		"top_languages":  names,
	}).Info("calculated stats")

	langSVG, err := render.LanguageCard(res.Languages)
	if err != nil {
		return Result{}, err
	}
	activitySVG, err := render.ActivityCard(res.Activity)
	if err != nil {
		return Result{}, err
	}

	if err := opts.Writer.WriteCards(langSVG, activitySVG); err != nil {
		return Result{}, err
	}

	log.WithField("dir", opts.Writer.Dir()).Info("stats saved")
	return res, nil
}
