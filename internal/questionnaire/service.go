package questionnaire

import (
	"context"
	"time"
)

// Service is the query façade over the graph store: list applications, fetch
// one application with its reconciled question tree, save a batch of answers.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListApplications returns application headers only; Questions stays empty.
func (s *Service) ListApplications(ctx context.Context) ([]Application, error) {
	session := s.store.Session(ctx, ReadMode)
	defer session.Close(ctx)

	rows, err := session.Run(ctx, listApplicationsQuery, nil)
	if err != nil {
		return nil, err
	}
	apps := make([]Application, 0, len(rows))
	for _, row := range rows {
		props, err := nodeColumn(row, "app")
		if err != nil {
			return nil, err
		}
		app, err := applicationFromProps(props)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// GetApplicationWithQuestions fetches the application and every question in
// its section tree, with answers joined where a relationship scoped to this
// application exists. Both traversals run in one session.
func (s *Service) GetApplicationWithQuestions(ctx context.Context, applicationUUID string) (Application, error) {
	session := s.store.Session(ctx, ReadMode)
	defer session.Close(ctx)

	params := map[string]any{"applicationUuid": applicationUUID}
	answered, err := session.Run(ctx, answeredQuestionsQuery, params)
	if err != nil {
		return Application{}, err
	}
	unanswered, err := session.Run(ctx, unansweredQuestionsQuery, params)
	if err != nil {
		return Application{}, err
	}
	return reconcile(applicationUUID, answered, unanswered)
}

// SaveAnswers upserts one answer per (question, application) pair in a single
// store request. Nothing is echoed back on success.
func (s *Service) SaveAnswers(ctx context.Context, applicationUUID string, batch []SaveAnswer) error {
	if len(batch) == 0 {
		return nil
	}
	session := s.store.Session(ctx, WriteMode)
	defer session.Close(ctx)

	rows, err := session.Run(ctx, saveAnswersQuery, saveAnswersParams(applicationUUID, batch, time.Now()))
	if err != nil {
		return err
	}
	if missing := missingQuestions(batch, rows); len(missing) > 0 {
		return &QuestionNotFoundError{UUIDs: missing}
	}
	return nil
}
