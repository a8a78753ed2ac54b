package database

import (
	"context"
	"errors"
	"os"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"questionnaire/internal/logger"
	"questionnaire/internal/questionnaire"
)

// Connection opens the process-wide driver handle from the AuraDB environment
// variables. The caller owns closing it at shutdown.
func Connection() neo4j.DriverWithContext {
	uri := os.Getenv("AURADB_URI")
	if uri == "" {
		logger.Fatal("AURADB_URI not set", nil)
	}

	driver, err := neo4j.NewDriverWithContext(
		uri,
		neo4j.BasicAuth(os.Getenv("AURADB_USERNAME"), os.Getenv("AURADB_PASSWORD"), ""),
	)
	if err != nil {
		logger.Fatal("Unable to create Neo4j driver", err)
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		logger.Fatal("Unable to connect to Neo4j", err)
	}

	logger.Info("Connected to Neo4j!")
	return driver
}

// Store adapts the Neo4j driver to the questionnaire store interface. One
// driver session per Session call; node and relationship values are flattened
// to their property maps before they reach the domain layer.
type Store struct {
	driver neo4j.DriverWithContext
}

func NewStore(driver neo4j.DriverWithContext) *Store {
	return &Store{driver: driver}
}

func (s *Store) Session(ctx context.Context, mode questionnaire.AccessMode) questionnaire.StoreSession {
	accessMode := neo4j.AccessModeRead
	if mode == questionnaire.WriteMode {
		accessMode = neo4j.AccessModeWrite
	}
	return &storeSession{
		session: s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: accessMode}),
	}
}

type storeSession struct {
	session neo4j.SessionWithContext
}

func (s *storeSession) Run(ctx context.Context, cypher string, params map[string]any) ([]questionnaire.Row, error) {
	result, err := s.session.Run(ctx, cypher, params)
	if err != nil {
		return nil, classify(err)
	}
	records, err := result.Collect(ctx)
	if err != nil {
		return nil, classify(err)
	}
	rows := make([]questionnaire.Row, 0, len(records))
	for _, record := range records {
		row := make(questionnaire.Row, len(record.Keys))
		for i, key := range record.Keys {
			row[key] = flatten(record.Values[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *storeSession) Close(ctx context.Context) error {
	return s.session.Close(ctx)
}

// flatten strips driver entity wrappers down to plain property maps.
func flatten(value any) any {
	switch v := value.(type) {
	case neo4j.Node:
		return v.Props
	case neo4j.Relationship:
		return v.Props
	default:
		return value
	}
}

// classify maps driver failures the caller could only answer with "try again
// later" onto StoreUnavailableError: connectivity loss, plus transient and
// leadership/session-expiry server codes. Everything else passes through.
func classify(err error) error {
	if neo4j.IsConnectivityError(err) {
		return &questionnaire.StoreUnavailableError{Err: err}
	}
	var dbErr *neo4j.Neo4jError
	if errors.As(err, &dbErr) && dbErr.IsRetriable() {
		return &questionnaire.StoreUnavailableError{Err: err}
	}
	return err
}
