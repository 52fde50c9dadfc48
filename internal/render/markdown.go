// Package render builds the markdown bodies posted to grading issues.
package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
	"github.com/usf-cs272-fall2021/action-request-grade/internal/policy"
)

var instructionsTmpl = template.Must(template.New("instructions").Parse(`## Student Instructions

Hello @{{.Actor}}! Please follow these instructions to request your project {{.Project}} {{.TypeLower}} grade:

- [ ] Edit the issue body above and replace ` + "`[FULL_NAME]`" + ` with your full name and ` + "`[USF_EMAIL]`" + ` with your USF username so we can enter your grade on Canvas. (Make sure to remove the ` + "`[`" + ` and ` + "`]`" + ` symbols too.)

- [ ] Make sure the [labels, assignee, and milestone](https://guides.github.com/features/issues/) were autoassigned correctly. (If any of these are missing, reach out on the course forums.)

- [ ] Make sure the parsed dates and resulting grade were autocalculated correctly. It is possible the difference in time zones affected the math. If there is an error, please add a comment notifying us of the issue.

- [ ] **Re-open the issue when all of the above is complete.** :arrow_left:

Click each of the above tasks as you complete them!

We will reply and lock this issue once the grade is updated on Canvas. If we do not respond within 2 *business* days, please reach out on CampusWire.

:warning: **We will not see this issue and update your grade until you re-open it!**
`))

var bodyTmpl = template.Must(template.New("body").Parse(`## Student Information

  - **Full Name:** [FULL_NAME]
  - **USF Email:** [USF_EMAIL]@usfca.edu

## Project Information

  - **Project:** Project {{.Project}} {{.ProjectName}}
{{- if .FunctionalityRef}}
  - **Project Functionality:** [Issue #{{.FunctionalityRef.Number}}]({{.FunctionalityRef.HTMLURL}})
{{- end}}
  - **{{.Type}} Deadline:** {{.Report.Deadline}}

## Release Information

  - **Release:** [{{.Release}}]({{.ReleaseURL}})
  - **Release Verified:** [Run {{.RunNumber}} ({{.RunID}})]({{.RunURL}})
  - **Release Created:** {{.ReleaseCreated}}

## Grade Information

  - **Late Deduction:** ` + "`{{.Report.Deduction}}`" + `
  - **Project {{.Type}} Grade:** ` + "`{{.Report.Grade}}%`" + ` (before other deductions)
{{- if .Summary}}

## Approved Pull Requests

{{.SummaryTable}}

## Extra Requests

  - **Extra Issues:** {{.ExtraIssues}}
  - **Extra Pull Requests:** {{.ExtraPulls}}
{{- if .Overflow}}

:warning: **Beware creating too many extra issues or pull requests for future projects!**
{{- end}}
{{- end}}
`))

type bodyData struct {
	Project          int
	ProjectName      string
	Type             entities.GradeType
	Release          string
	ReleaseURL       string
	ReleaseCreated   string
	RunNumber        int
	RunID            int64
	RunURL           string
	Report           entities.GradeReport
	FunctionalityRef *entities.Issue
	Summary          *entities.Reconciliation
	SummaryTable     string
	ExtraIssues      string
	ExtraPulls       string
	Overflow         bool
}

// IssueBody renders the grading issue body for a run outcome. Design
// outcomes additionally carry the reconciliation summary.
func IssueBody(outcome entities.GradeOutcome) string {
	state := outcome.State
	data := bodyData{
		Project:          state.Project,
		ProjectName:      policy.Name(state.Project),
		Type:             state.Type,
		Release:          state.Release,
		ReleaseURL:       state.ReleaseURL,
		ReleaseCreated:   outcome.ReleaseCreated,
		RunNumber:        state.RunNumber,
		RunID:            state.RunID,
		RunURL:           state.RunURL,
		Report:           outcome.Report,
		FunctionalityRef: outcome.Functionality,
		Summary:          outcome.Summary,
	}

	if outcome.Summary != nil {
		data.SummaryTable = SummaryTable(outcome.Summary.Rows)
		data.ExtraPulls = numberList(outcome.Summary.Unapproved)
		data.ExtraIssues = "N/A"
		data.Overflow = len(outcome.Summary.Unapproved) > 0
	}

	var sb strings.Builder
	_ = bodyTmpl.Execute(&sb, data)
	return sb.String()
}

// Instructions renders the student-instructions comment for a run.
func Instructions(state entities.RunState) string {
	var sb strings.Builder
	_ = instructionsTmpl.Execute(&sb, struct {
		Actor     string
		Project   int
		TypeLower string
	}{
		Actor:     state.Actor,
		Project:   state.Project,
		TypeLower: state.Type.Lower(),
	})
	return sb.String()
}

// SummaryTable renders the approved pull request rows as a markdown table.
func SummaryTable(rows []entities.PullSummaryRow) string {
	lines := []string{
		"| Pull | Status | Version | Type | Approved | Passed? |",
		"|:----:|:------:|:-------:|:-----|:---------|:-------:|",
	}

	for _, row := range rows {
		passed := ""
		if row.Passed {
			passed = ":ballot_box_with_check:"
		}
		lines = append(lines, fmt.Sprintf("| [#%d](%s) | %s | `%s` | %s | %s | %s |",
			row.Number, row.HTMLURL, row.Status, row.Version, row.Synchrony, row.Approved, passed))
	}

	return strings.Join(lines, "\n")
}

func numberList(pulls []entities.PullRequest) string {
	if len(pulls) == 0 {
		return "N/A"
	}
	refs := make([]string, 0, len(pulls))
	for _, pull := range pulls {
		refs = append(refs, fmt.Sprintf("#%d", pull.Number))
	}
	return strings.Join(refs, ", ")
}
