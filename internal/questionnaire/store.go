package questionnaire

import "context"

// Row is one record returned by the store, keyed by result column name. Node
// and relationship values arrive flattened to their property maps.
type Row map[string]any

// AccessMode hints whether a session will only read or also write.
type AccessMode int

const (
	ReadMode AccessMode = iota
	WriteMode
)

// Store is the graph database boundary. Each façade operation opens exactly
// one session and closes it on every exit path.
type Store interface {
	Session(ctx context.Context, mode AccessMode) StoreSession
}

// StoreSession runs parameterized queries within one scoped session.
type StoreSession interface {
	Run(ctx context.Context, cypher string, params map[string]any) ([]Row, error)
	Close(ctx context.Context) error
}
