package entities

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// releaseTag matches grading release tags: a leading v, then the project id
// (1-4) and two more nonnegative version components.
var releaseTag = regexp.MustCompile(`^v([1-4])\.(\d+)\.(\d+)$`)

// ProjectFromTag extracts the project id from a release tag.
func ProjectFromTag(tag string) (int, error) {
	matched := releaseTag.FindStringSubmatch(tag)
	if matched == nil {
		return 0, fmt.Errorf("%w: unable to parse project from release %q", ErrBadReleaseTag, tag)
	}
	project, err := strconv.Atoi(matched[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadReleaseTag, tag)
	}
	return project, nil
}

// Release is a read-only snapshot of a repository release.
type Release struct {
	ID        int64
	TagName   string
	HTMLURL   string
	CreatedAt time.Time
}

// WorkflowRun is a read-only snapshot of one verification workflow run.
type WorkflowRun struct {
	ID         int64
	RunNumber  int
	Name       string
	HeadBranch string
	Status     string
	Conclusion string
	HTMLURL    string
}

// Completed reports whether the run finished successfully.
func (r WorkflowRun) Completed() bool {
	return r.Status == "completed" && r.Conclusion == "success"
}
