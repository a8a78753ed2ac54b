package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"questionnaire/internal/logger"
	"questionnaire/internal/questionnaire"
)

// ListApplications godoc
// @Summary      List applications
// @Description  Returns every application header; questions are not expanded
// @Tags         applications
// @Produce      json
// @Success      200  {array}   ApplicationResponse
// @Failure      500  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/applications [get]
func ListApplications(svc *questionnaire.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		apps, err := svc.ListApplications(ctx)
		if err != nil {
			return storeError(c, err)
		}

		results := make([]ApplicationResponse, 0, len(apps))
		for _, app := range apps {
			results = append(results, toApplicationResponse(app))
		}
		return c.JSON(http.StatusOK, results)
	}
}

// GetApplicationWithQuestions godoc
// @Summary      Get an application with its questions
// @Description  Returns the application and every question in its section tree, answers joined where present
// @Tags         applications
// @Produce      json
// @Param        uuid  path  string  true  "Application UUID"
// @Success      200  {object}  ApplicationResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/applications/{uuid} [get]
func GetApplicationWithQuestions(svc *questionnaire.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		uuid := strings.TrimSpace(c.Param("uuid"))
		if uuid == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "application uuid required"})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		app, err := svc.GetApplicationWithQuestions(ctx, uuid)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusOK, toApplicationResponse(app))
	}
}

// SaveAnswers godoc
// @Summary      Save a batch of answers
// @Description  Creates or updates one answer per (question, application) pair
// @Tags         answers
// @Accept       json
// @Param        uuid  path  string              true  "Application UUID"
// @Param        body  body  SaveAnswersRequest  true  "Answers to save"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/applications/{uuid}/answers [put]
func SaveAnswers(svc *questionnaire.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		uuid := strings.TrimSpace(c.Param("uuid"))
		if uuid == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "application uuid required"})
		}

		var req SaveAnswersRequest
		if err := c.Bind(&req); err != nil || len(req.Answers) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
		}

		batch := make([]questionnaire.SaveAnswer, 0, len(req.Answers))
		for _, entry := range req.Answers {
			if strings.TrimSpace(entry.QuestionUUID) == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "question_uuid required"})
			}
			answerType, err := questionnaire.ParseAnswerType(entry.Type)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			batch = append(batch, questionnaire.SaveAnswer{
				QuestionUUID: entry.QuestionUUID,
				Answer:       entry.Answer,
				Type:         answerType,
			})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		if err := svc.SaveAnswers(ctx, uuid, batch); err != nil {
			return storeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func storeError(c echo.Context, err error) error {
	var appNotFound *questionnaire.ApplicationNotFoundError
	var questionNotFound *questionnaire.QuestionNotFoundError
	var unavailable *questionnaire.StoreUnavailableError

	switch {
	case errors.As(err, &appNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "application not found"})
	case errors.As(err, &questionNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.As(err, &unavailable):
		logger.Error("store unavailable", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store unavailable"})
	default:
		logger.Error("query failed", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
}
