package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunStateMapRoundTrip(t *testing.T) {
	state := RunState{
		Type:        GradeDesign,
		Project:     2,
		Release:     "v2.1.3",
		ReleaseID:   11,
		ReleaseURL:  "https://example.test/release",
		ReleaseDate: time.Date(2021, 10, 26, 18, 30, 0, 0, time.UTC),
		RunNumber:   5,
		RunID:       55,
		RunURL:      "https://example.test/run",
		Actor:       "octocat",
	}

	restored, err := RunStateFromMap(state.ToMap())
	require.NoError(t, err)
	require.Equal(t, state, restored)
}

func TestRunStateFromMapRejectsBadType(t *testing.T) {
	saved := RunState{Type: GradeDesign, Release: "v1.0.0"}.ToMap()
	saved["type"] = "Homework"

	_, err := RunStateFromMap(saved)
	require.ErrorIs(t, err, ErrInvalidGradeType)
}

func TestRunStateFromMapRejectsBadRelease(t *testing.T) {
	saved := map[string]string{"type": "Design", "release": "oops"}

	_, err := RunStateFromMap(saved)
	require.ErrorIs(t, err, ErrBadReleaseTag)
}

func TestIssueTitle(t *testing.T) {
	state := RunState{Type: GradeFunctionality, Release: "v1.0.0"}
	require.Equal(t, "Project v1.0.0 Functionality Grade", state.IssueTitle())

	state = RunState{Type: GradeDesign, Release: "v3.2.1", Project: 3}
	require.Equal(t, "Project v3.2.1 Design Grade", state.IssueTitle())
	require.Equal(t, "project3", state.ProjectLabel())
}
