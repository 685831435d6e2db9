// Package session models the calculator's caller-side state as an explicit
// state machine: Reduce takes the current State and one Event and returns
// the next State. Nothing in the package mutates shared data.
package session

import (
	"errors"

	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/alexanderramin/gradepoint/internal/engine"
	"github.com/google/uuid"
)

var (
	ErrCalcTypeNotSelected = errors.New("calculation type not selected")
	ErrSemesterNotSelected = errors.New("semester not selected")
	ErrTrackRequired       = errors.New("semester track not selected")
	ErrNotConfirmed        = errors.New("semester not confirmed")
	ErrCPIModeNotSelected  = errors.New("cpi mode not selected")
)

// Catalog is what the reducer needs from the curriculum.
type Catalog interface {
	engine.Catalog
	Tracks(number int) []domain.Track
}

// State is everything one calculator session knows. Grades holds raw text
// exactly as entered; it is only converted when calculating.
type State struct {
	ID           string
	AllowLetters bool

	CalcType domain.CalcType
	Number   int
	Track    domain.Track

	// Confirmed is set once the semester choice is accepted and Semester
	// is loaded.
	Confirmed bool
	Semester  *domain.Semester
	Grades    []string

	CPIMode     domain.CPIMode
	PreviousCPI string
	CurrentSPI  string

	SPI *float64
	CPI *float64
	Err error

	ShowGradeTable bool
}

// New returns an empty session with a fresh id.
func New(allowLetters bool) State {
	return State{
		ID:           uuid.NewString(),
		AllowLetters: allowLetters,
	}
}

// SemesterID returns the selected semester key.
func (s State) SemesterID() domain.SemesterID {
	return domain.SemTrack(s.Number, s.Track)
}

// ShowGradeInput reports whether per-course grades are collected.
func (s State) ShowGradeInput() bool {
	if !s.Confirmed {
		return false
	}
	switch s.CalcType {
	case domain.CalcSPI:
		return true
	case domain.CalcCPI:
		return s.Number == 1 || s.CPIMode == domain.CPIFromGrades
	}
	return false
}

// ShowCPIOptions reports whether a CPI mode must be chosen.
func (s State) ShowCPIOptions() bool {
	return s.Confirmed && s.CalcType == domain.CalcCPI && s.Number > 1
}

// CanCalculate reports whether the form has every section a calculation needs.
func (s State) CanCalculate() bool {
	return s.Confirmed && (s.ShowGradeInput() || s.CPIMode == domain.CPIFromSPI)
}

// HasResult reports whether a calculation has succeeded since the last edit.
func (s State) HasResult() bool {
	return s.SPI != nil || s.CPI != nil
}

func (s *State) clearOutcome() {
	s.SPI = nil
	s.CPI = nil
	s.Err = nil
}

func (s *State) resetSemesterDependent() {
	s.Confirmed = false
	s.Semester = nil
	s.Grades = nil
	s.CPIMode = ""
	s.PreviousCPI = ""
	s.CurrentSPI = ""
}

func (s *State) resolve(token string) string {
	if s.AllowLetters {
		return engine.ResolveGradeToken(token)
	}
	return token
}

func (s *State) resolvedGrades() []string {
	out := make([]string, len(s.Grades))
	for i, g := range s.Grades {
		out[i] = s.resolve(g)
	}
	return out
}

func ptr(v float64) *float64 {
	return &v
}
