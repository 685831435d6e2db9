package session

import (
	"slices"

	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/alexanderramin/gradepoint/internal/engine"
)

// Reduce returns the state that follows s after e. s is not modified.
// Every event except Reset and ToggleGradeTable clears the previous
// result and error first.
func Reduce(cat Catalog, s State, e Event) State {
	next := s
	next.Grades = slices.Clone(s.Grades)

	switch e.(type) {
	case Reset, ToggleGradeTable:
	default:
		next.clearOutcome()
	}

	switch e := e.(type) {
	case SelectCalcType:
		next.CalcType = e.Type
		next.resetSemesterDependent()

	case SelectSemester:
		next.Number = e.Number
		next.Track = domain.NoTrack
		next.resetSemesterDependent()

	case SelectTrack:
		next.Track = e.Track
		next.resetSemesterDependent()

	case Confirm:
		confirm(cat, &next)

	case UpdateGrade:
		if !next.Confirmed || e.Index < 0 || e.Index >= len(next.Grades) {
			return next
		}
		next.Grades[e.Index] = e.Text
		if _, status := engine.ValidateGradeToken(next.resolve(e.Text)); status != domain.TokenValid && status != domain.TokenEmpty {
			next.Err = &engine.GradeError{Position: e.Index, Token: e.Text, Status: status}
		}

	case SelectCPIMode:
		next.CPIMode = e.Mode
		next.PreviousCPI = ""
		next.CurrentSPI = ""
		if next.Semester != nil {
			next.Grades = make([]string, next.Semester.CourseCount())
		}

	case UpdatePreviousCPI:
		next.PreviousCPI = e.Text

	case UpdateCurrentSPI:
		next.CurrentSPI = e.Text

	case Calculate:
		calculate(cat, &next)

	case Calculated:
		if err := next.Ready(); err != nil {
			next.Err = err
			return next
		}
		next.SPI, next.CPI, next.Err = e.SPI, e.CPI, e.Err

	case Reset:
		fresh := New(s.AllowLetters)
		fresh.ID = s.ID
		return fresh

	case ToggleGradeTable:
		next.ShowGradeTable = !next.ShowGradeTable
	}

	return next
}

func confirm(cat Catalog, s *State) {
	s.Confirmed = false
	s.Semester = nil
	s.Grades = nil

	if s.Number <= 0 {
		s.Err = ErrSemesterNotSelected
		return
	}
	if len(cat.Tracks(s.Number)) > 0 && s.Track == domain.NoTrack {
		s.Err = ErrTrackRequired
		return
	}

	sem, err := cat.Lookup(s.SemesterID())
	if err != nil {
		s.Err = err
		return
	}

	s.Confirmed = true
	s.Semester = &sem
	s.Grades = make([]string, sem.CourseCount())
}

func calculate(cat Catalog, s *State) {
	if err := s.Ready(); err != nil {
		s.Err = err
		return
	}

	id := s.SemesterID()

	if s.CalcType == domain.CalcSPI {
		spi, err := engine.ComputeSPIFromTokens(cat, id, s.resolvedGrades())
		if err != nil {
			s.Err = err
			return
		}
		s.SPI = ptr(spi)
		return
	}

	var (
		res engine.CPIResult
		err error
	)
	if s.Number > 1 && s.CPIMode == domain.CPIFromSPI {
		res, err = engine.ComputeCPIFromText(cat, id, s.PreviousCPI, s.CurrentSPI)
	} else {
		res, err = engine.ComputeCPIFromTokens(cat, id, s.PreviousCPI, s.resolvedGrades())
	}
	if err != nil {
		s.Err = err
		return
	}
	s.SPI = ptr(res.SPI)
	s.CPI = ptr(res.CPI)
}
