// Package httpapi is the engine's HTTP surface: batch ingest, archive
// queries, live config, and an SSE event stream for local dashboards.
package httpapi

import (
	"sync/atomic"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/events"
	"jobsift-engine/internal/store"
)

type Deps struct {
	Archive *store.Archive
	Hub     *events.Hub

	// CfgVal holds the live config.Config; handlers load a snapshot per
	// request and PUT /config swaps in the next one.
	CfgVal *atomic.Value

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Fan-out width for per-posting derivation during ingest.
	Workers int
}

func (d Deps) cfg() config.Config {
	return d.CfgVal.Load().(config.Config)
}
