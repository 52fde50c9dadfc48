package render

import (
	"strings"
	"testing"
	"time"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"

	"github.com/stretchr/testify/require"
)

func designState() entities.RunState {
	return entities.RunState{
		Type:        entities.GradeDesign,
		Project:     1,
		Release:     "v1.2.3",
		ReleaseID:   11,
		ReleaseURL:  "https://example.test/release",
		ReleaseDate: time.Date(2021, 10, 5, 12, 0, 0, 0, time.UTC),
		RunNumber:   5,
		RunID:       55,
		RunURL:      "https://example.test/run",
		Actor:       "octocat",
	}
}

func TestIssueBodyFunctionality(t *testing.T) {
	state := designState()
	state.Type = entities.GradeFunctionality

	body := IssueBody(entities.GradeOutcome{
		State: state,
		Report: entities.GradeReport{
			Created:  "September 27, 2021 at 5:00 PM PDT",
			Deadline: "September 28, 2021 at 11:59 PM PDT",
			Grade:    100,
		},
		ReleaseCreated: "September 27, 2021 at 5:00 PM PDT",
	})

	require.Contains(t, body, "[FULL_NAME]")
	require.Contains(t, body, "[USF_EMAIL]@usfca.edu")
	require.Contains(t, body, "Project 1 Inverted Index")
	require.Contains(t, body, "**Functionality Deadline:** September 28, 2021 at 11:59 PM PDT")
	require.Contains(t, body, "[v1.2.3](https://example.test/release)")
	require.Contains(t, body, "[Run 5 (55)](https://example.test/run)")
	require.Contains(t, body, "**Release Created:** September 27, 2021 at 5:00 PM PDT")
	require.Contains(t, body, "**Project Functionality Grade:** `100%`")
	require.NotContains(t, body, "Approved Pull Requests")
	require.NotContains(t, body, "Project Functionality:")
}

func TestIssueBodyDesign(t *testing.T) {
	record := entities.Issue{Number: 12, HTMLURL: "https://example.test/issue/12"}
	summary := &entities.Reconciliation{
		Approved: []entities.ApprovedPull{{
			Pull: entities.PullRequest{Issue: entities.Issue{Number: 7, HTMLURL: "https://example.test/pull/7"}},
		}},
		Unapproved: []entities.PullRequest{
			{Issue: entities.Issue{Number: 9}},
			{Issue: entities.Issue{Number: 10}},
		},
		Rows: []entities.PullSummaryRow{{
			Number:    7,
			HTMLURL:   "https://example.test/pull/7",
			Status:    entities.IssueClosed,
			Version:   "v2",
			Synchrony: "asynchronous",
			Approved:  "October 5, 2021 at 1:00 PM PDT",
			Passed:    true,
		}},
	}

	body := IssueBody(entities.GradeOutcome{
		State: designState(),
		Report: entities.GradeReport{
			Created:  "October 5, 2021 at 1:00 PM PDT",
			Deadline: "October 8, 2021 at 11:59 PM PDT",
			Grade:    100,
		},
		ReleaseCreated: "October 5, 2021 at 5:00 AM PDT",
		Summary:        summary,
		Functionality:  &record,
	})

	require.Contains(t, body, "[Issue #12](https://example.test/issue/12)")
	// the graded instant is the approval time; Release Created stays the
	// release creation time
	require.Contains(t, body, "**Release Created:** October 5, 2021 at 5:00 AM PDT")
	require.NotContains(t, body, "**Release Created:** October 5, 2021 at 1:00 PM PDT")
	require.Contains(t, body, "**Design Deadline:**")
	require.Contains(t, body, "## Approved Pull Requests")
	require.Contains(t, body, "| [#7](https://example.test/pull/7) |")
	require.Contains(t, body, ":ballot_box_with_check:")
	require.Contains(t, body, "**Extra Issues:** N/A")
	require.Contains(t, body, "**Extra Pull Requests:** #9, #10")
	require.Contains(t, body, "Beware creating too many extra issues")
}

func TestIssueBodyDesignNoOverflow(t *testing.T) {
	summary := &entities.Reconciliation{
		Approved: []entities.ApprovedPull{{
			Pull: entities.PullRequest{Issue: entities.Issue{Number: 7}},
		}},
	}

	body := IssueBody(entities.GradeOutcome{State: designState(), Summary: summary})
	require.Contains(t, body, "**Extra Pull Requests:** N/A")
	require.NotContains(t, body, "Beware creating too many")
}

func TestInstructions(t *testing.T) {
	text := Instructions(designState())
	require.Contains(t, text, "Hello @octocat!")
	require.Contains(t, text, "project 1 design grade")
	require.Contains(t, text, "Re-open the issue")
}

func TestSummaryTable(t *testing.T) {
	rows := []entities.PullSummaryRow{
		{Number: 7, HTMLURL: "https://example.test/pull/7", Status: "closed", Version: "v1", Synchrony: "synchronous", Approved: "N/A", Passed: false},
		{Number: 9, HTMLURL: "https://example.test/pull/9", Status: "draft", Version: "v2", Synchrony: "asynchronous", Approved: "N/A", Passed: true},
	}

	table := SummaryTable(rows)
	lines := strings.Split(table, "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "| Pull | Status | Version | Type | Approved | Passed? |", lines[0])
	require.Contains(t, lines[2], "[#7](https://example.test/pull/7)")
	require.NotContains(t, lines[2], ":ballot_box_with_check:")
	require.Contains(t, lines[3], ":ballot_box_with_check:")
}
