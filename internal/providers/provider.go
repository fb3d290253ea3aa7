package providers

import (
	"context"

	"github.com/vukan322/devcards/internal/core"
)

type Provider interface {
	Name() string
	Fetch(ctx context.Context, handle string) (core.Snapshot, error)
}
