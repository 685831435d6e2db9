// Package engine computes semester and cumulative performance indices.
// Every function is pure: results depend only on the arguments and the
// read-only catalog.
package engine

import (
	"fmt"

	"github.com/alexanderramin/gradepoint/internal/domain"
)

// Catalog is the read-only semester source the engine computes against.
type Catalog interface {
	Lookup(id domain.SemesterID) (domain.Semester, error)
	CumulativeThrough(number int) (float64, error)
}

// ComputeSPI returns the credit-weighted mean of grades for semester id,
// divided by the semester's total credit. No rounding is applied.
func ComputeSPI(cat Catalog, id domain.SemesterID, grades []float64) (float64, error) {
	sem, err := cat.Lookup(id)
	if err != nil {
		return 0, err
	}
	if sem.TotalCredit == 0 {
		return 0, fmt.Errorf("semester %s: %w", id, ErrDegenerateSemester)
	}
	if len(grades) != sem.CourseCount() {
		return 0, &CountMismatchError{Semester: id, Want: sem.CourseCount(), Got: len(grades)}
	}

	var weighted float64
	for i, c := range sem.Courses {
		g := grades[i]
		if status := classifyValue(g); status != domain.TokenValid {
			return 0, &GradeError{Position: i, Token: fmt.Sprint(g), Status: status}
		}
		weighted += g * c.Credit
	}
	return weighted / sem.TotalCredit, nil
}

// ComputeSPIFromTokens validates raw grade tokens against semester id and
// computes the SPI.
func ComputeSPIFromTokens(cat Catalog, id domain.SemesterID, tokens []string) (float64, error) {
	sem, err := cat.Lookup(id)
	if err != nil {
		return 0, err
	}
	grades, err := ParseGradeSet(id, tokens, sem.CourseCount())
	if err != nil {
		return 0, err
	}
	return ComputeSPI(cat, id, grades)
}
