package questionnaire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerType_KnownValues(t *testing.T) {
	for _, wire := range []string{"String", "Bool", "Float", "Int", "List", "Label", "Date"} {
		got, err := ParseAnswerType(wire)
		require.NoError(t, err, "value %q should parse", wire)
		assert.Equal(t, AnswerType(wire), got)
	}
}

func TestParseAnswerType_Unknown(t *testing.T) {
	_, err := ParseAnswerType("Decimal")
	assert.Error(t, err, "values outside the enumeration must be rejected")
}

func TestAnswerFromProps(t *testing.T) {
	created := time.Date(2022, 11, 20, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	a, err := answerFromProps(map[string]any{
		"uuid":       "ans-1",
		"answer":     "Paris",
		"type":       "String",
		"created_at": created,
		"updated_at": updated,
	})
	require.NoError(t, err)
	assert.Equal(t, "ans-1", a.UUID)
	assert.Equal(t, "Paris", a.Answer)
	assert.Equal(t, AnswerString, a.Type)
	assert.Equal(t, created, a.CreatedAt)
	assert.Equal(t, updated, a.UpdatedAt)
}

func TestAnswerFromProps_TimestampsAsStrings(t *testing.T) {
	a, err := answerFromProps(map[string]any{
		"uuid":       "ans-1",
		"answer":     "42",
		"type":       "Int",
		"created_at": "2022-11-20T10:00:00Z",
		"updated_at": "2022-11-20T11:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 11, 20, 10, 0, 0, 0, time.UTC), a.CreatedAt)
	assert.Equal(t, time.Date(2022, 11, 20, 11, 0, 0, 0, time.UTC), a.UpdatedAt)
}

func TestAnswerFromProps_MissingField(t *testing.T) {
	_, err := answerFromProps(map[string]any{
		"uuid":       "ans-1",
		"type":       "String",
		"created_at": time.Now(),
		"updated_at": time.Now(),
	})
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "answer", missing.Entity)
	assert.Equal(t, "answer", missing.Field)
}

func TestAnswerFromProps_UnknownStoredType(t *testing.T) {
	_, err := answerFromProps(map[string]any{
		"uuid":       "ans-1",
		"answer":     "x",
		"type":       "Decimal",
		"created_at": time.Now(),
		"updated_at": time.Now(),
	})
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing, "a type outside the enumeration is schema drift")
	assert.Equal(t, "type", missing.Field)
}

func TestQuestionFromProps(t *testing.T) {
	q, err := questionFromProps(map[string]any{
		"uuid":            "q-1",
		"section_uuid":    "s-1",
		"order":           int64(3),
		"type":            "text",
		"question_string": "What is the capital of France?",
	})
	require.NoError(t, err)
	assert.Equal(t, "q-1", q.UUID)
	assert.Equal(t, "s-1", q.SectionUUID)
	assert.Equal(t, 3, q.Order)
	assert.Equal(t, "text", q.Type)
	assert.Equal(t, "What is the capital of France?", q.QuestionString)
	assert.Nil(t, q.Answer, "absent answer maps to nil, never a sentinel")
}

func TestQuestionFromProps_FractionalOrder(t *testing.T) {
	_, err := questionFromProps(map[string]any{
		"uuid":            "q-1",
		"section_uuid":    "s-1",
		"order":           2.7,
		"type":            "text",
		"question_string": "?",
	})
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing, "a fractional order must surface as drift, not truncate")
	assert.Equal(t, "order", missing.Field)
}

func TestQuestionFromProps_WholeFloatOrder(t *testing.T) {
	q, err := questionFromProps(map[string]any{
		"uuid":            "q-1",
		"section_uuid":    "s-1",
		"order":           3.0,
		"type":            "text",
		"question_string": "?",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, q.Order)
}

func TestQuestionFromProps_MissingOrder(t *testing.T) {
	_, err := questionFromProps(map[string]any{
		"uuid":            "q-1",
		"section_uuid":    "s-1",
		"type":            "text",
		"question_string": "?",
	})
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "question", missing.Entity)
	assert.Equal(t, "order", missing.Field)
}

func TestApplicationFromProps(t *testing.T) {
	app, err := applicationFromProps(applicationProps("app-1"))
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.UUID)
	assert.Equal(t, "Home insurance", app.Name)
	assert.Equal(t, "1", app.Version)
	assert.Empty(t, app.Questions)
}

func TestApplicationFromProps_MissingName(t *testing.T) {
	props := applicationProps("app-1")
	delete(props, "name")

	_, err := applicationFromProps(props)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)
}
