package formatter

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/gradepoint/internal/app"
	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/alexanderramin/gradepoint/internal/engine"
	"github.com/alexanderramin/gradepoint/internal/session"
)

// ErrorMessage turns a calculator error into a sentence for the user.
// Unknown errors fall back to err.Error().
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		gradeErr *engine.GradeError
		countErr *engine.CountMismatchError
		indexErr *engine.IndexError
		reqErr   *app.RequestError
	)

	switch {
	case errors.Is(err, session.ErrCalcTypeNotSelected):
		return "Please select a calculation type (SPI or CPI)."
	case errors.Is(err, session.ErrSemesterNotSelected):
		return "Please select a semester first."
	case errors.Is(err, session.ErrTrackRequired):
		return "Please select an option for this semester."
	case errors.Is(err, session.ErrNotConfirmed):
		return "Please select the semester and confirm it first."
	case errors.Is(err, session.ErrCPIModeNotSelected):
		return "Please select a CPI calculation option."
	case errors.Is(err, engine.ErrNotFound):
		return "That semester is not in the curriculum."
	case errors.As(err, &countErr):
		return fmt.Sprintf("Semester %s has %d courses but %d grades were given.", countErr.Semester, countErr.Want, countErr.Got)
	case errors.As(err, &gradeErr):
		return gradeMessage(gradeErr)
	case errors.Is(err, engine.ErrCountMismatch):
		return "The number of grades does not match the number of courses."
	case errors.Is(err, engine.ErrMissingGrade):
		return "Please enter all grades."
	case errors.Is(err, engine.ErrInvalidGrade):
		return "Invalid grade(s) entered. Please use numbers between 0 and 10."
	case errors.As(err, &indexErr):
		return indexMessage(indexErr)
	case errors.Is(err, engine.ErrDegenerateSemester):
		return "This semester has no credits, so no index can be computed."
	case errors.As(err, &reqErr):
		return reqErr.Message
	}
	return err.Error()
}

func gradeMessage(e *engine.GradeError) string {
	n := e.Position + 1
	switch e.Status {
	case domain.TokenEmpty:
		return fmt.Sprintf("Please enter all grades (course %d is empty).", n)
	case domain.TokenOutOfRange:
		return fmt.Sprintf("Grade %q for course %d is out of range. Please enter a number between 0 and 10.", e.Token, n)
	default:
		return fmt.Sprintf("Invalid grade %q for course %d. Please enter a number between 0 and 10.", e.Token, n)
	}
}

func indexMessage(e *engine.IndexError) string {
	what := "current SPI"
	if errors.Is(e.Field, engine.ErrInvalidPreviousCPI) {
		what = "previous CPI"
	}
	if e.Status == domain.TokenEmpty {
		return fmt.Sprintf("Please enter the %s.", what)
	}
	return fmt.Sprintf("Invalid %s value %q. Please enter a number between 0 and 10.", what, e.Token)
}
