package tools

import (
	"context"

	"github.com/usestring/boredq/internal/config"
	"github.com/usestring/boredq/internal/fetch"
	"github.com/usestring/boredq/internal/query"
	"github.com/usestring/boredq/internal/schema"
	"github.com/usestring/boredq/pkg/client"
)

// MimeJSON is the MIME type of JSON resources.
const MimeJSON = "application/json"

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Client    *client.Client
	Fetcher   *fetch.Fetcher
	Config    *config.Config
	Query     *query.Engine
	Validator *schema.Validator
}

// Run executes one query, serving key lookups from the cache.
func (d *Deps) Run(ctx context.Context, mode client.Mode, key string, params []client.ParameterSpec) (*client.Result, error) {
	return d.Fetcher.Query(ctx, mode, key, params)
}
