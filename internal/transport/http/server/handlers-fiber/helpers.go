package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"

	"github.com/gofiber/fiber/v2"
)

type errorCode string

const (
	codeInvalidInput  errorCode = "INVALID_INPUT"
	codeNotFound      errorCode = "NOT_FOUND"
	codeNotVerified   errorCode = "RUN_NOT_VERIFIED"
	codeDuplicate     errorCode = "DUPLICATE_ISSUE"
	codePriorIssue    errorCode = "PRIOR_ISSUE"
	codeExtraIssues   errorCode = "EXTRA_ISSUES"
	codeMissingRecord errorCode = "MISSING_FUNCTIONALITY"
	codeNoApproval    errorCode = "NO_APPROVED_PULL"
	codeRemoteWrite   errorCode = "REMOTE_WRITE_FAILED"
	codeInternal      errorCode = "INTERNAL"
)

type errorBody struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := codeInternal

	switch {
	case errors.Is(err, entities.ErrInvalidGradeType), errors.Is(err, entities.ErrBadReleaseTag):
		status = http.StatusBadRequest
		code = codeInvalidInput
	case errors.Is(err, entities.ErrReleaseNotFound):
		status = http.StatusNotFound
		code = codeNotFound
	case errors.Is(err, entities.ErrRunNotVerified):
		status = http.StatusConflict
		code = codeNotVerified
	case errors.Is(err, entities.ErrDuplicateIssue):
		status = http.StatusConflict
		code = codeDuplicate
	case errors.Is(err, entities.ErrPriorIssue):
		status = http.StatusConflict
		code = codePriorIssue
	case errors.Is(err, entities.ErrExtraIssues):
		status = http.StatusConflict
		code = codeExtraIssues
	case errors.Is(err, entities.ErrMissingFunctionality):
		status = http.StatusConflict
		code = codeMissingRecord
	case errors.Is(err, entities.ErrNoApprovedPull):
		status = http.StatusConflict
		code = codeNoApproval
	case errors.Is(err, entities.ErrRemoteWrite):
		status = http.StatusBadGateway
		code = codeRemoteWrite
	}

	return c.Status(status).JSON(errorResponse(code, err.Error()))
}

func errorResponse(code errorCode, msg string) errorEnvelope {
	return errorEnvelope{Error: errorBody{Code: code, Message: msg}}
}
