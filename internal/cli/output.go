package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/gradepoint/internal/app"
	"github.com/alexanderramin/gradepoint/internal/cli/formatter"
	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/spf13/pflag"
)

// userError carries a calculator error with a friendly message while
// keeping the original chain for errors.Is.
type userError struct {
	err error
}

func (e *userError) Error() string { return formatter.ErrorMessage(e.err) }
func (e *userError) Unwrap() error { return e.err }

func asUserError(err error) error {
	if err == nil {
		return nil
	}
	var ue *userError
	if errors.As(err, &ue) {
		return err
	}
	return &userError{err: err}
}

func addJSONFlag(fs *pflag.FlagSet, v *bool) {
	fs.BoolVar(v, "json", false, "Print the result as JSON")
}

func addGradeFlag(fs *pflag.FlagSet, v *[]string) {
	fs.StringSliceVarP(v, "grade", "g", nil, "Grade for each course in catalog order (repeat or comma-separate)")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

type courseJSON struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Credit float64 `json:"credit"`
}

type semesterJSON struct {
	Semester         string       `json:"semester"`
	Courses          []courseJSON `json:"courses"`
	TotalCredit      float64      `json:"total_credit"`
	CumulativeCredit float64      `json:"cumulative_credit"`
}

func toSemesterJSON(s domain.Semester) semesterJSON {
	out := semesterJSON{
		Semester:         s.ID.String(),
		Courses:          make([]courseJSON, 0, len(s.Courses)),
		TotalCredit:      s.TotalCredit,
		CumulativeCredit: s.CumulativeCredit,
	}
	for _, c := range s.Courses {
		out.Courses = append(out.Courses, courseJSON{Code: c.Code, Name: c.Name, Credit: c.Credit})
	}
	return out
}

type spiJSON struct {
	Semester string    `json:"semester"`
	Grades   []float64 `json:"grades"`
	Credits  []float64 `json:"credits"`
	SPI      float64   `json:"spi"`
}

func toSPIJSON(resp *app.SPIResponse) spiJSON {
	return spiJSON{
		Semester: resp.Semester.ID.String(),
		Grades:   resp.Grades,
		Credits:  resp.Semester.Credits(),
		SPI:      resp.SPI,
	}
}

type cpiJSON struct {
	Semester string  `json:"semester"`
	Mode     string  `json:"mode"`
	SPI      float64 `json:"spi"`
	CPI      float64 `json:"cpi"`
	Blended  bool    `json:"blended"`
}

func toCPIJSON(resp *app.CPIResponse) cpiJSON {
	return cpiJSON{
		Semester: resp.Semester.ID.String(),
		Mode:     string(resp.Mode),
		SPI:      resp.SPI,
		CPI:      resp.CPI,
		Blended:  resp.Blended,
	}
}

func parseSemesterArg(arg string) (domain.SemesterID, error) {
	id, err := domain.ParseSemesterID(arg)
	if err != nil {
		return domain.SemesterID{}, fmt.Errorf("%w (use a number like 3, or 7.1 for a semester option)", err)
	}
	return id, nil
}
