package session

import "github.com/alexanderramin/gradepoint/internal/domain"

// Event is one user interaction.
type Event interface {
	isEvent()
}

type SelectCalcType struct{ Type domain.CalcType }

type SelectSemester struct{ Number int }

type SelectTrack struct{ Track domain.Track }

// Confirm accepts the semester choice and loads its course list.
type Confirm struct{}

type UpdateGrade struct {
	Index int
	Text  string
}

type SelectCPIMode struct{ Mode domain.CPIMode }

type UpdatePreviousCPI struct{ Text string }

type UpdateCurrentSPI struct{ Text string }

type Calculate struct{}

// Calculated records the outcome of a calculation run outside the reducer.
// SPI and CPI are nil when Err is set.
type Calculated struct {
	SPI *float64
	CPI *float64
	Err error
}

type Reset struct{}

type ToggleGradeTable struct{}

func (SelectCalcType) isEvent()    {}
func (SelectSemester) isEvent()    {}
func (SelectTrack) isEvent()       {}
func (Confirm) isEvent()           {}
func (UpdateGrade) isEvent()       {}
func (SelectCPIMode) isEvent()     {}
func (UpdatePreviousCPI) isEvent() {}
func (UpdateCurrentSPI) isEvent()  {}
func (Calculate) isEvent()         {}
func (Calculated) isEvent()        {}
func (Reset) isEvent()             {}
func (ToggleGradeTable) isEvent()  {}
