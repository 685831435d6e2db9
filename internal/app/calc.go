package app

import "github.com/alexanderramin/gradepoint/internal/domain"

type SPIRequest struct {
	Semester domain.SemesterID
	// Grades holds one raw token per course, in catalog order. Letter
	// grades (AA..FF) are accepted when AllowLetters is set.
	Grades       []string
	AllowLetters bool
}

type SPIResponse struct {
	Semester domain.Semester
	Grades   []float64
	SPI      float64
}

type CPIRequest struct {
	Semester domain.SemesterID
	Mode     domain.CPIMode
	// PreviousCPI covers every semester before Semester. Ignored for semester 1.
	PreviousCPI string
	// CurrentSPI is used with domain.CPIFromSPI.
	CurrentSPI string
	// Grades are used with domain.CPIFromGrades and for semester 1.
	Grades       []string
	AllowLetters bool
}

// NewCPIRequest returns a request defaulting to the grades mode.
func NewCPIRequest(id domain.SemesterID) CPIRequest {
	return CPIRequest{
		Semester: id,
		Mode:     domain.CPIFromGrades,
	}
}

type CPIResponse struct {
	Semester domain.Semester
	Mode     domain.CPIMode
	SPI      float64
	CPI      float64
	// Blended is false for semester 1, where CPI equals SPI.
	Blended bool
}

type RequestErrorCode string

const (
	RequestErrInvalidMode RequestErrorCode = "INVALID_MODE"
)

type RequestError struct {
	Code    RequestErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}
