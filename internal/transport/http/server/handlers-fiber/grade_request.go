package handlers_fiber

import (
	"net/http"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"

	"github.com/gofiber/fiber/v2"
)

type gradeRequestBody struct {
	Type    string `json:"type"`
	Release string `json:"release"`
	Actor   string `json:"actor"`
}

type gradeResponse struct {
	IssueNumber int                  `json:"issue_number"`
	IssueURL    string               `json:"issue_url"`
	Report      entities.GradeReport `json:"report"`
	State       map[string]string    `json:"state"`

	ApprovedPulls   []entities.PullSummaryRow `json:"approved_pulls,omitempty"`
	UnapprovedCount int                       `json:"unapproved_count,omitempty"`
}

// PostGradeRequest runs one complete grading request: verification, grading
// and issue creation.
func (h *Handler) PostGradeRequest(c *fiber.Ctx) error {
	var body gradeRequestBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(codeInvalidInput, "invalid body"))
	}

	state, err := h.uc.VerifyRequest(c.Context(), entities.GradeRequest{
		Type:    body.Type,
		Release: body.Release,
		Actor:   body.Actor,
	})
	if err != nil {
		return writeError(c, err)
	}

	outcome, err := h.uc.RequestGrade(c.Context(), *state)
	if err != nil {
		return writeError(c, err)
	}

	resp := gradeResponse{
		IssueNumber: outcome.IssueNumber,
		IssueURL:    outcome.IssueURL,
		Report:      outcome.Report,
		State:       outcome.State.ToMap(),
	}
	if outcome.Summary != nil {
		resp.ApprovedPulls = outcome.Summary.Rows
		resp.UnapprovedCount = len(outcome.Summary.Unapproved)
	}

	return c.Status(http.StatusCreated).JSON(resp)
}
