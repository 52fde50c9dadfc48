package domain

import (
	"testing"
	"time"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"

	"github.com/stretchr/testify/require"
)

const targetTitle = "Project v1.0.0 Design Grade"

func resolvedIssue(number int, labels ...string) entities.Issue {
	return entities.Issue{
		Number:     number,
		Title:      "Project v1.0.0 Functionality Grade",
		State:      entities.IssueClosed,
		Locked:     true,
		LockReason: entities.LockReasonResolved,
		Labels:     labels,
		CreatedAt:  time.Date(2021, 10, 1, 0, 0, number, 0, time.UTC),
	}
}

func TestClassifyDuplicateStopsScan(t *testing.T) {
	items := []entities.Item{
		entities.PullRequest{Issue: entities.Issue{Number: 1, Title: "Review 1"}},
		entities.Issue{Number: 2, Title: targetTitle},
		entities.Issue{Number: 3, Title: "never classified"},
	}

	result := Classify(items, targetTitle)
	require.True(t, result.DuplicateFound)
	require.Len(t, result.Pulls, 1)
	require.Empty(t, result.Extra)
}

func TestClassifyDuplicatePullRequestCounts(t *testing.T) {
	items := []entities.Item{
		entities.PullRequest{Issue: entities.Issue{Number: 1, Title: targetTitle}},
	}

	result := Classify(items, targetTitle)
	require.True(t, result.DuplicateFound)
	require.Empty(t, result.Pulls)
}

func TestClassifyBuckets(t *testing.T) {
	items := []entities.Item{
		entities.PullRequest{Issue: entities.Issue{Number: 1, Title: "Review 1"}},
		resolvedIssue(2, "functionality"),
		entities.Issue{Number: 3, Title: "Question about tests", State: entities.IssueOpen},
		entities.PullRequest{Issue: entities.Issue{Number: 4, Title: "Review 2"}},
	}

	result := Classify(items, targetTitle)
	require.False(t, result.DuplicateFound)
	require.Len(t, result.Pulls, 2)
	require.Equal(t, 1, result.Pulls[0].Number)
	require.Equal(t, 4, result.Pulls[1].Number)
	require.NotNil(t, result.Functionality)
	require.Equal(t, 2, result.Functionality.Number)
	require.Len(t, result.Extra, 1)
	require.Equal(t, 3, result.Extra[0].Number)
}

// A resolved, locked issue without the functionality label is still extra.
func TestClassifyLockedWithoutLabelIsExtra(t *testing.T) {
	issue := resolvedIssue(2, "design")

	result := Classify([]entities.Item{issue}, targetTitle)
	require.Nil(t, result.Functionality)
	require.Len(t, result.Extra, 1)
}

// Several qualifying records should not happen, but when they do the latest
// encountered one wins. Deliberate: changing this to first-wins would change
// which approval date design grading keys off.
func TestClassifyKeepsLatestFunctionalityRecord(t *testing.T) {
	first := resolvedIssue(2, "functionality")
	second := resolvedIssue(6, "functionality")

	result := Classify([]entities.Item{first, second}, targetTitle)
	require.NotNil(t, result.Functionality)
	require.Equal(t, 6, result.Functionality.Number)
	require.Empty(t, result.Extra)
}
