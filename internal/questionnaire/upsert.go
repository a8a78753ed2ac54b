package questionnaire

import (
	"time"

	"github.com/google/uuid"
)

// SaveAnswer is one entry of a save batch.
type SaveAnswer struct {
	QuestionUUID string
	Answer       string
	Type         AnswerType
}

// saveAnswersParams builds the bound parameters for one batch upsert. Answer
// and relationship uuids are minted client-side so the store needs no uuid
// plugin; on an ON MATCH they are simply unused, which keeps the original
// uuid and created_at intact.
func saveAnswersParams(applicationUUID string, batch []SaveAnswer, now time.Time) map[string]any {
	answers := make([]map[string]any, 0, len(batch))
	for _, sa := range batch {
		answers = append(answers, map[string]any{
			"questionUuid":     sa.QuestionUUID,
			"answer":           sa.Answer,
			"type":             string(sa.Type),
			"answerUuid":       uuid.New().String(),
			"relationshipUuid": uuid.New().String(),
		})
	}
	return map[string]any{
		"applicationUuid": applicationUUID,
		"answers":         answers,
		"now":             now.UTC(),
	}
}

// missingQuestions diffs the question uuids echoed by the merge against the
// submitted batch. UNWIND plus MATCH silently drops entries whose question
// does not exist; those must surface as an error, not vanish.
func missingQuestions(batch []SaveAnswer, rows []Row) []string {
	matched := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if id, ok := row["questionUuid"].(string); ok {
			matched[id] = struct{}{}
		}
	}
	var missing []string
	reported := make(map[string]struct{}, len(batch))
	for _, sa := range batch {
		if _, ok := matched[sa.QuestionUUID]; ok {
			continue
		}
		if _, dup := reported[sa.QuestionUUID]; dup {
			continue
		}
		reported[sa.QuestionUUID] = struct{}{}
		missing = append(missing, sa.QuestionUUID)
	}
	return missing
}
