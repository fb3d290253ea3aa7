package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/vukan322/devcards/internal/core"
)

const dateLayout = "2006-01-02"

type Provider struct {
	client   *githubv4.Client
	recorder *bodyRecorder
}

// New returns a provider that authenticates every request with a bearer token.
func New(token, endpoint string) *Provider {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return NewWithClient(oauth2.NewClient(context.Background(), src), endpoint)
}

func NewWithClient(httpClient *http.Client, endpoint string) *Provider {
	next := httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	rec := &bodyRecorder{next: next}

	c := *httpClient
	c.Transport = rec

	return &Provider{
		client:   githubv4.NewEnterpriseClient(endpoint, &c),
		recorder: rec,
	}
}

func (p *Provider) Name() string {
	return "github"
}

// APIError is returned when the GraphQL request fails or the response carries
// errors. Errors holds the full errors array when the server sent one.
type APIError struct {
	Handle string
	Err    error
	Errors []GraphQLError
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("github: query for %q: %v", e.Handle, e.Err)
	}

	payload, err := json.Marshal(e.Errors)
	if err != nil {
		return fmt.Sprintf("github: query for %q: %v", e.Handle, e.Err)
	}
	return fmt.Sprintf("github: query for %q: %d error(s): %s", e.Handle, len(e.Errors), payload)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

type statsQuery struct {
	User struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions int
				Weeks              []struct {
					ContributionDays []struct {
						ContributionCount int
						Date              string
					}
				}
			}
		}
		Repositories struct {
			Nodes []struct {
				Name      string
				Languages struct {
					Edges []struct {
						Size int64
						Node struct {
							Name  string
							Color string
						}
					}
				} `graphql:"languages(first: 10, orderBy: {field: SIZE, direction: DESC})"`
			}
		} `graphql:"repositories(first: 100, ownerAffiliations: OWNER, isFork: false, orderBy: {field: PUSHED_AT, direction: DESC})"`
	} `graphql:"user(login: $username)"`
}

func (p *Provider) Fetch(ctx context.Context, handle string) (core.Snapshot, error) {
	var q statsQuery
	variables := map[string]any{
		"username": githubv4.String(handle),
	}

	p.recorder.reset()
	if err := p.client.Query(ctx, &q, variables); err != nil {
		return core.Snapshot{}, &APIError{
			Handle: handle,
			Err:    err,
			Errors: responseErrors(p.recorder.lastBody()),
		}
	}

	cal, err := toCalendar(q)
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("github: %w", err)
	}

	return core.Snapshot{
		Username:     handle,
		Calendar:     cal,
		Repositories: toRepositories(q),
	}, nil
}

func toCalendar(q statsQuery) (core.ContributionCalendar, error) {
	src := q.User.ContributionsCollection.ContributionCalendar
	cal := core.ContributionCalendar{
		TotalContributions: src.TotalContributions,
		Weeks:              make([]core.ContributionWeek, 0, len(src.Weeks)),
	}

	for _, w := range src.Weeks {
		week := core.ContributionWeek{Days: make([]core.ContributionDay, 0, len(w.ContributionDays))}
		for _, d := range w.ContributionDays {
			date, err := time.Parse(dateLayout, d.Date)
			if err != nil {
				return core.ContributionCalendar{}, fmt.Errorf("parse contribution date %q: %w", d.Date, err)
			}
			week.Days = append(week.Days, core.ContributionDay{Date: date, Count: d.ContributionCount})
		}
		cal.Weeks = append(cal.Weeks, week)
	}

	return cal, nil
}

func toRepositories(q statsQuery) []core.Repository {
	nodes := q.User.Repositories.Nodes
	repos := make([]core.Repository, 0, len(nodes))
	for _, n := range nodes {
		r := core.Repository{Name: n.Name}
		for _, e := range n.Languages.Edges {
			r.Languages = append(r.Languages, core.LanguageEdge{
				Name:  e.Node.Name,
				Color: e.Node.Color,
				Size:  e.Size,
			})
		}
		repos = append(repos, r)
	}
	return repos
}
