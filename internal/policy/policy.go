// Package policy holds the static grading calendar and penalty tiers.
package policy

import (
	"fmt"
	"time"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
)

// DefaultZone is the reference zone all deadline and submission arithmetic
// is normalized to, regardless of the submitter's own zone.
const DefaultZone = "America/Los_Angeles"

// Deadlines are calendar dates; the effective instant is the end of that day
// in the reference zone.
var functionality = map[int]string{
	1: "2021-09-28",
	2: "2021-10-26",
	3: "2021-11-16",
	4: "2021-12-06",
}

var design = map[int]string{
	1: "2021-10-08",
	2: "2021-11-05",
	3: "2021-12-03",
}

var names = map[int]string{
	1: "Inverted Index",
	2: "Partial Search",
	3: "Multithreading",
	4: "Search Engine",
}

var assignees = map[entities.GradeType][]string{
	entities.GradeFunctionality: {"mtquach2", "ybsolomon"},
	entities.GradeDesign:        {"mtquach2", "ybsolomon"},
}

// Name returns the project name for the given project id.
func Name(project int) string {
	return names[project]
}

// Assignees returns the graders assigned to issues of the given track.
func Assignees(gradeType entities.GradeType) []string {
	return assignees[gradeType]
}

// Penalty returns the late-penalty tiers for a grading track.
func Penalty(gradeType entities.GradeType) entities.PenaltyPolicy {
	if gradeType == entities.GradeDesign {
		return entities.PenaltyPolicy{BlockHours: 72, PenaltyPerBlock: 5, CapPercent: 30}
	}
	return entities.PenaltyPolicy{BlockHours: 24, PenaltyPerBlock: 2, CapPercent: 30}
}

// Deadline returns the effective deadline instant for a project and track:
// the configured calendar date at 23:59:59 in the given zone.
func Deadline(project int, gradeType entities.GradeType, zone *time.Location) (time.Time, error) {
	table := functionality
	if gradeType == entities.GradeDesign {
		table = design
	}

	date, ok := table[project]
	if !ok {
		return time.Time{}, fmt.Errorf("no %s deadline for project %d", gradeType.Lower(), project)
	}

	deadline, err := time.ParseInLocation("2006-01-02T15:04:05", date+"T23:59:59", zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s deadline for project %d: %w", gradeType.Lower(), project, err)
	}
	return deadline, nil
}
