package questionnaire

import (
	"fmt"
	"math"
	"time"
)

// AnswerType tags how an answer payload should be interpreted. Payloads are
// always transported as text; no type-specific validation happens here.
type AnswerType string

const (
	AnswerString AnswerType = "String"
	AnswerBool   AnswerType = "Bool"
	AnswerFloat  AnswerType = "Float"
	AnswerInt    AnswerType = "Int"
	AnswerList   AnswerType = "List"
	AnswerLabel  AnswerType = "Label"
	AnswerDate   AnswerType = "Date"
)

// ParseAnswerType maps a wire value onto the closed enumeration.
func ParseAnswerType(s string) (AnswerType, error) {
	switch t := AnswerType(s); t {
	case AnswerString, AnswerBool, AnswerFloat, AnswerInt, AnswerList, AnswerLabel, AnswerDate:
		return t, nil
	}
	return "", fmt.Errorf("unknown answer type %q", s)
}

// Answer exists only in the context of one (Question, Application) pairing; a
// question may carry a different answer per application.
type Answer struct {
	UUID      string
	Answer    string
	Type      AnswerType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Question struct {
	UUID           string
	SectionUUID    string
	Order          int
	Type           string
	QuestionString string
	Answer         *Answer
}

type Application struct {
	UUID      string
	Name      string
	Version   string
	CreatedAt time.Time
	UpdatedAt time.Time
	Questions []Question
}

func answerFromProps(props map[string]any) (Answer, error) {
	var a Answer
	var err error
	if a.UUID, err = stringProp("answer", props, "uuid"); err != nil {
		return Answer{}, err
	}
	if a.Answer, err = stringProp("answer", props, "answer"); err != nil {
		return Answer{}, err
	}
	typ, err := stringProp("answer", props, "type")
	if err != nil {
		return Answer{}, err
	}
	if a.Type, err = ParseAnswerType(typ); err != nil {
		return Answer{}, &MissingFieldError{Entity: "answer", Field: "type"}
	}
	if a.CreatedAt, err = timeProp("answer", props, "created_at"); err != nil {
		return Answer{}, err
	}
	if a.UpdatedAt, err = timeProp("answer", props, "updated_at"); err != nil {
		return Answer{}, err
	}
	return a, nil
}

func questionFromProps(props map[string]any) (Question, error) {
	var q Question
	var err error
	if q.UUID, err = stringProp("question", props, "uuid"); err != nil {
		return Question{}, err
	}
	if q.SectionUUID, err = stringProp("question", props, "section_uuid"); err != nil {
		return Question{}, err
	}
	if q.Order, err = intProp("question", props, "order"); err != nil {
		return Question{}, err
	}
	if q.Type, err = stringProp("question", props, "type"); err != nil {
		return Question{}, err
	}
	if q.QuestionString, err = stringProp("question", props, "question_string"); err != nil {
		return Question{}, err
	}
	return q, nil
}

// applicationFromProps maps the header fields only; the caller owns Questions.
func applicationFromProps(props map[string]any) (Application, error) {
	var app Application
	var err error
	if app.UUID, err = stringProp("application", props, "uuid"); err != nil {
		return Application{}, err
	}
	if app.Name, err = stringProp("application", props, "name"); err != nil {
		return Application{}, err
	}
	if app.Version, err = stringProp("application", props, "version"); err != nil {
		return Application{}, err
	}
	if app.CreatedAt, err = timeProp("application", props, "created_at"); err != nil {
		return Application{}, err
	}
	if app.UpdatedAt, err = timeProp("application", props, "updated_at"); err != nil {
		return Application{}, err
	}
	return app, nil
}

func stringProp(entity string, props map[string]any, key string) (string, error) {
	if s, ok := props[key].(string); ok {
		return s, nil
	}
	return "", &MissingFieldError{Entity: entity, Field: key}
}

func intProp(entity string, props map[string]any, key string) (int, error) {
	switch v := props[key].(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		// Only whole numbers; a fractional value is drift, not a rounding job.
		if v == math.Trunc(v) {
			return int(v), nil
		}
	}
	return 0, &MissingFieldError{Entity: entity, Field: key}
}

// timeProp accepts both driver datetime values and RFC 3339 strings.
func timeProp(entity string, props map[string]any, key string) (time.Time, error) {
	switch v := props[key].(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, &MissingFieldError{Entity: entity, Field: key}
}
