// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidGradeType signals an unrecognized grade request type.
	ErrInvalidGradeType = errors.New("invalid grade type")
	// ErrBadReleaseTag signals a release tag the project id cannot be parsed from.
	ErrBadReleaseTag = errors.New("bad release tag")
	// ErrReleaseNotFound signals a release tag with no matching release.
	ErrReleaseNotFound = errors.New("release not found")
	// ErrRunNotVerified signals a missing or unsuccessful test workflow run.
	ErrRunNotVerified = errors.New("release run not verified")
	// ErrDuplicateIssue signals a grading issue with the requested title already exists.
	ErrDuplicateIssue = errors.New("duplicate grading issue")
	// ErrPriorIssue signals any earlier functionality issue for the project.
	ErrPriorIssue = errors.New("prior issue exists")
	// ErrExtraIssues signals unexpected open or unresolved project issues.
	ErrExtraIssues = errors.New("extra issues exist")
	// ErrMissingFunctionality signals no resolved functionality record for the project.
	ErrMissingFunctionality = errors.New("functionality issue missing")
	// ErrNoApprovedPull signals no pull request carries a qualifying approval.
	ErrNoApprovedPull = errors.New("no approved pull request")
	// ErrRemoteWrite signals a failed issue, comment, close or milestone call.
	ErrRemoteWrite = errors.New("remote write failed")
)
