package engine

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/gradepoint/internal/domain"
)

var (
	// ErrNotFound indicates the semester id is absent from the catalog.
	ErrNotFound = domain.ErrSemesterNotFound

	// ErrCountMismatch indicates the grade set length differs from the
	// semester's course count.
	ErrCountMismatch = errors.New("grade count does not match course count")

	// ErrInvalidGrade indicates a grade is empty, unparsable or outside [0, 10].
	ErrInvalidGrade = errors.New("invalid grade")

	// ErrMissingGrade narrows ErrInvalidGrade to a grade that was never entered.
	ErrMissingGrade = errors.New("grade not entered")

	// ErrDegenerateSemester indicates a zero credit total where a divisor is needed.
	ErrDegenerateSemester = errors.New("semester has zero credit total")

	// ErrInvalidPreviousCPI indicates the previous CPI text or value is unusable.
	ErrInvalidPreviousCPI = errors.New("invalid previous cpi")

	// ErrInvalidCurrentSPI indicates the current SPI text or value is unusable.
	ErrInvalidCurrentSPI = errors.New("invalid current spi")
)

// GradeError reports the first rejected grade in a grade set. It matches
// ErrInvalidGrade, and also ErrMissingGrade when the token was empty.
type GradeError struct {
	Position int // zero-based course index
	Token    string
	Status   domain.TokenStatus
}

func (e *GradeError) Error() string {
	return fmt.Sprintf("grade %d (%q): %s", e.Position+1, e.Token, e.Status)
}

func (e *GradeError) Unwrap() []error {
	if e.Status == domain.TokenEmpty {
		return []error{ErrInvalidGrade, ErrMissingGrade}
	}
	return []error{ErrInvalidGrade}
}

// CountMismatchError reports a grade set of the wrong length.
type CountMismatchError struct {
	Semester domain.SemesterID
	Want     int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("semester %s: expected %d grades, got %d", e.Semester, e.Want, e.Got)
}

func (e *CountMismatchError) Unwrap() error {
	return ErrCountMismatch
}

// IndexError reports an unusable previous CPI or current SPI. Field is
// ErrInvalidPreviousCPI or ErrInvalidCurrentSPI.
type IndexError struct {
	Field  error
	Token  string
	Status domain.TokenStatus
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v %q: %s", e.Field, e.Token, e.Status)
}

func (e *IndexError) Unwrap() error {
	return e.Field
}

// Kind names the error category for err, or "" when err is not an engine error.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrCountMismatch):
		return "count_mismatch"
	case errors.Is(err, ErrMissingGrade):
		return "missing_grade"
	case errors.Is(err, ErrInvalidGrade):
		return "invalid_grade"
	case errors.Is(err, ErrDegenerateSemester):
		return "degenerate_semester"
	case errors.Is(err, ErrInvalidPreviousCPI):
		return "invalid_previous_cpi"
	case errors.Is(err, ErrInvalidCurrentSPI):
		return "invalid_current_spi"
	}
	return ""
}
