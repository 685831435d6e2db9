package session

import (
	"slices"

	"github.com/alexanderramin/gradepoint/internal/app"
	"github.com/alexanderramin/gradepoint/internal/domain"
)

// Ready returns the first missing selection that blocks a calculation, or
// nil when the form can be submitted.
func (s State) Ready() error {
	switch {
	case s.CalcType == "":
		return ErrCalcTypeNotSelected
	case s.Number <= 0:
		return ErrSemesterNotSelected
	case !s.Confirmed:
		return ErrNotConfirmed
	case s.CalcType == domain.CalcCPI && s.Number > 1 &&
		s.CPIMode != domain.CPIFromGrades && s.CPIMode != domain.CPIFromSPI:
		return ErrCPIModeNotSelected
	}
	return nil
}

// SPIRequest builds the service request for the entered grades.
func (s State) SPIRequest() app.SPIRequest {
	return app.SPIRequest{
		Semester:     s.SemesterID(),
		Grades:       slices.Clone(s.Grades),
		AllowLetters: s.AllowLetters,
	}
}

// CPIRequest builds the service request for the selected CPI mode.
// Semester 1 always sends grades.
func (s State) CPIRequest() app.CPIRequest {
	req := app.NewCPIRequest(s.SemesterID())
	req.PreviousCPI = s.PreviousCPI
	req.AllowLetters = s.AllowLetters
	if s.Number > 1 && s.CPIMode == domain.CPIFromSPI {
		req.Mode = domain.CPIFromSPI
		req.CurrentSPI = s.CurrentSPI
		return req
	}
	req.Grades = slices.Clone(s.Grades)
	return req
}
