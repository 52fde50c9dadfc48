package entities

import (
	"fmt"
	"strconv"
	"time"
)

// GradeRequest is the raw input of one grading run.
type GradeRequest struct {
	Type    string
	Release string
	Actor   string
}

// RunState carries the verified facts from the setup stage into grading.
// It is built once and passed by value; stages never mutate shared state.
type RunState struct {
	Type        GradeType
	Project     int
	Release     string
	ReleaseID   int64
	ReleaseURL  string
	ReleaseDate time.Time
	RunNumber   int
	RunID       int64
	RunURL      string
	Actor       string
}

// IssueTitle is the canonical grading issue title for this run.
func (s RunState) IssueTitle() string {
	return fmt.Sprintf("Project %s %s Grade", s.Release, s.Type)
}

// ProjectLabel is the label shared by all of this project's issues.
func (s RunState) ProjectLabel() string {
	return fmt.Sprintf("project%d", s.Project)
}

// ToMap flattens the run state to the string-keyed handoff form shared with
// the workflow side.
func (s RunState) ToMap() map[string]string {
	return map[string]string{
		"type":        string(s.Type),
		"release":     s.Release,
		"releaseId":   strconv.FormatInt(s.ReleaseID, 10),
		"releaseUrl":  s.ReleaseURL,
		"releaseDate": s.ReleaseDate.Format(time.RFC3339),
		"runNumber":   strconv.Itoa(s.RunNumber),
		"runId":       strconv.FormatInt(s.RunID, 10),
		"runUrl":      s.RunURL,
		"actor":       s.Actor,
	}
}

// RunStateFromMap restores run state from the handoff form.
func RunStateFromMap(saved map[string]string) (RunState, error) {
	state := RunState{
		Type:       GradeType(saved["type"]),
		Release:    saved["release"],
		ReleaseURL: saved["releaseUrl"],
		RunURL:     saved["runUrl"],
		Actor:      saved["actor"],
	}

	switch state.Type {
	case GradeFunctionality, GradeDesign:
	default:
		return RunState{}, fmt.Errorf("%w: %q", ErrInvalidGradeType, saved["type"])
	}

	project, err := ProjectFromTag(state.Release)
	if err != nil {
		return RunState{}, err
	}
	state.Project = project

	if state.ReleaseID, err = strconv.ParseInt(saved["releaseId"], 10, 64); err != nil {
		return RunState{}, fmt.Errorf("restore releaseId: %w", err)
	}
	if state.ReleaseDate, err = time.Parse(time.RFC3339, saved["releaseDate"]); err != nil {
		return RunState{}, fmt.Errorf("restore releaseDate: %w", err)
	}
	if state.RunNumber, err = strconv.Atoi(saved["runNumber"]); err != nil {
		return RunState{}, fmt.Errorf("restore runNumber: %w", err)
	}
	if state.RunID, err = strconv.ParseInt(saved["runId"], 10, 64); err != nil {
		return RunState{}, fmt.Errorf("restore runId: %w", err)
	}

	return state, nil
}

// GradeOutcome is the result of a successful grading run. ReleaseCreated is
// the display form of the release creation instant; for design runs it is not
// the graded timestamp, which is the canonical approval time.
type GradeOutcome struct {
	State          RunState
	Report         GradeReport
	ReleaseCreated string
	Summary        *Reconciliation
	Functionality  *Issue
	IssueNumber    int
	IssueURL       string
}
