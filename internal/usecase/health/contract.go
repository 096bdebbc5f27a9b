package health

import "context"

// DBPinger checks article store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// EngineChecker checks search engine availability.
type EngineChecker interface {
	Health(ctx context.Context) error
}
