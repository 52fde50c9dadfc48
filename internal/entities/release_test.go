package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectFromTag(t *testing.T) {
	tests := []struct {
		tag     string
		project int
		wantErr bool
	}{
		{tag: "v1.0.0", project: 1},
		{tag: "v3.4.10", project: 3},
		{tag: "v4.12.2", project: 4},
		{tag: "3.4.10", wantErr: true},
		{tag: "v5.0.0", wantErr: true},
		{tag: "v0.1.0", wantErr: true},
		{tag: "v1.0", wantErr: true},
		{tag: "v1.0.0-rc1", wantErr: true},
		{tag: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.tag, func(t *testing.T) {
			project, err := ProjectFromTag(tt.tag)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadReleaseTag)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.project, project)
		})
	}
}

func TestWorkflowRunCompleted(t *testing.T) {
	run := WorkflowRun{Status: "completed", Conclusion: "success"}
	require.True(t, run.Completed())

	run.Conclusion = "failure"
	require.False(t, run.Completed())

	run = WorkflowRun{Status: "in_progress", Conclusion: "success"}
	require.False(t, run.Completed())
}
