package handlers

import (
	"time"

	"questionnaire/internal/questionnaire"
)

type AnswerResponse struct {
	UUID      string    `json:"uuid"`
	Answer    string    `json:"answer"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuestionResponse struct {
	UUID           string          `json:"uuid"`
	SectionUUID    string          `json:"section_uuid"`
	Order          int             `json:"order"`
	Type           string          `json:"type"`
	QuestionString string          `json:"question_string"`
	Answer         *AnswerResponse `json:"answer,omitempty"`
}

type ApplicationResponse struct {
	UUID      string             `json:"uuid"`
	Name      string             `json:"name"`
	Version   string             `json:"version"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	Questions []QuestionResponse `json:"questions"`
}

type SaveAnswerRequest struct {
	QuestionUUID string `json:"question_uuid" validate:"required"`
	Answer       string `json:"answer" validate:"required"`
	Type         string `json:"type" validate:"required"`
}

type SaveAnswersRequest struct {
	Answers []SaveAnswerRequest `json:"answers" validate:"required"`
}

func toApplicationResponse(app questionnaire.Application) ApplicationResponse {
	questions := make([]QuestionResponse, 0, len(app.Questions))
	for _, q := range app.Questions {
		qr := QuestionResponse{
			UUID:           q.UUID,
			SectionUUID:    q.SectionUUID,
			Order:          q.Order,
			Type:           q.Type,
			QuestionString: q.QuestionString,
		}
		if q.Answer != nil {
			qr.Answer = &AnswerResponse{
				UUID:      q.Answer.UUID,
				Answer:    q.Answer.Answer,
				Type:      string(q.Answer.Type),
				CreatedAt: q.Answer.CreatedAt,
				UpdatedAt: q.Answer.UpdatedAt,
			}
		}
		questions = append(questions, qr)
	}
	return ApplicationResponse{
		UUID:      app.UUID,
		Name:      app.Name,
		Version:   app.Version,
		CreatedAt: app.CreatedAt,
		UpdatedAt: app.UpdatedAt,
		Questions: questions,
	}
}
