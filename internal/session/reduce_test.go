package session

import (
	"testing"

	"github.com/alexanderramin/gradepoint/internal/catalog"
	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/alexanderramin/gradepoint/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(t *testing.T, s State, events ...Event) State {
	t.Helper()
	for _, e := range events {
		s = Reduce(catalog.Default(), s, e)
	}
	return s
}

func fillGrades(s State, text string) []Event {
	events := make([]Event, len(s.Grades))
	for i := range s.Grades {
		events[i] = UpdateGrade{Index: i, Text: text}
	}
	return events
}

func TestNew(t *testing.T) {
	s := New(true)
	assert.NotEmpty(t, s.ID)
	assert.True(t, s.AllowLetters)
	assert.False(t, s.Confirmed)
	assert.NotEqual(t, s.ID, New(true).ID)
}

func TestReduce_SPIFlow(t *testing.T) {
	s := apply(t, New(false),
		SelectCalcType{Type: domain.CalcSPI},
		SelectSemester{Number: 1},
		Confirm{},
	)
	require.True(t, s.Confirmed)
	require.NotNil(t, s.Semester)
	require.Len(t, s.Grades, 8)
	assert.True(t, s.ShowGradeInput())
	assert.False(t, s.ShowCPIOptions())
	assert.True(t, s.CanCalculate())

	s = apply(t, s, fillGrades(s, "10")...)
	s = apply(t, s, Calculate{})

	require.NoError(t, s.Err)
	require.NotNil(t, s.SPI)
	assert.InDelta(t, 10.0, *s.SPI, 1e-9)
	assert.Nil(t, s.CPI)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := apply(t, New(false), SelectCalcType{Type: domain.CalcSPI}, SelectSemester{Number: 2}, Confirm{})
	before := append([]string(nil), s.Grades...)

	_ = Reduce(catalog.Default(), s, UpdateGrade{Index: 0, Text: "9"})
	assert.Equal(t, before, s.Grades)
}

func TestReduce_MissingGradeReported(t *testing.T) {
	s := apply(t, New(false), SelectCalcType{Type: domain.CalcSPI}, SelectSemester{Number: 2}, Confirm{})
	s = apply(t, s, UpdateGrade{Index: 0, Text: "9"}, Calculate{})

	assert.ErrorIs(t, s.Err, engine.ErrMissingGrade)
	assert.Nil(t, s.SPI)
}

func TestReduce_InvalidGradeKeptAndFlagged(t *testing.T) {
	s := apply(t, New(false), SelectCalcType{Type: domain.CalcSPI}, SelectSemester{Number: 3}, Confirm{})
	s = apply(t, s, UpdateGrade{Index: 2, Text: "11"})

	assert.Equal(t, "11", s.Grades[2])
	var ge *engine.GradeError
	require.ErrorAs(t, s.Err, &ge)
	assert.Equal(t, 2, ge.Position)
	assert.Equal(t, domain.TokenOutOfRange, ge.Status)

	// Empty text is "not yet entered", not an error.
	s = apply(t, s, UpdateGrade{Index: 2, Text: ""})
	assert.NoError(t, s.Err)
}

func TestReduce_UpdateGradeOutOfRangeIndexIgnored(t *testing.T) {
	s := apply(t, New(false), SelectCalcType{Type: domain.CalcSPI}, SelectSemester{Number: 1}, Confirm{})
	next := apply(t, s, UpdateGrade{Index: 8, Text: "9"}, UpdateGrade{Index: -1, Text: "9"})
	assert.Equal(t, s.Grades, next.Grades)

	unconfirmed := apply(t, New(false), UpdateGrade{Index: 0, Text: "9"})
	assert.Nil(t, unconfirmed.Grades)
}

func TestReduce_LetterGrades(t *testing.T) {
	s := apply(t, New(true), SelectCalcType{Type: domain.CalcSPI}, SelectSemester{Number: 8}, SelectTrack{Track: 2}, Confirm{})
	s = apply(t, s,
		UpdateGrade{Index: 0, Text: "AA"},
		UpdateGrade{Index: 1, Text: "bb"},
		UpdateGrade{Index: 2, Text: "10"},
		Calculate{},
	)
	require.NoError(t, s.Err)
	require.NotNil(t, s.SPI)
	assert.InDelta(t, (60.0+48.0+180.0)/30.0, *s.SPI, 1e-9)
}

func TestReduce_ConfirmErrors(t *testing.T) {
	s := apply(t, New(false), SelectCalcType{Type: domain.CalcSPI}, Confirm{})
	assert.ErrorIs(t, s.Err, ErrSemesterNotSelected)
	assert.False(t, s.Confirmed)

	s = apply(t, s, SelectSemester{Number: 7}, Confirm{})
	assert.ErrorIs(t, s.Err, ErrTrackRequired)
	assert.False(t, s.Confirmed)

	s = apply(t, s, SelectTrack{Track: 9}, Confirm{})
	assert.ErrorIs(t, s.Err, engine.ErrNotFound)

	s = apply(t, s, SelectSemester{Number: 99}, Confirm{})
	assert.ErrorIs(t, s.Err, engine.ErrNotFound)

	s = apply(t, s, SelectSemester{Number: 7}, SelectTrack{Track: 2}, Confirm{})
	require.NoError(t, s.Err)
	assert.True(t, s.Confirmed)
	assert.Equal(t, domain.SemTrack(7, 2), s.Semester.ID)
}

func TestReduce_SelectionInvalidatesConfirmation(t *testing.T) {
	s := apply(t, New(false), SelectCalcType{Type: domain.CalcSPI}, SelectSemester{Number: 2}, Confirm{})
	require.True(t, s.Confirmed)

	for _, e := range []Event{
		SelectCalcType{Type: domain.CalcCPI},
		SelectSemester{Number: 3},
		SelectTrack{Track: 1},
	} {
		next := Reduce(catalog.Default(), s, e)
		assert.False(t, next.Confirmed, "%T", e)
		assert.Nil(t, next.Semester, "%T", e)
		assert.Nil(t, next.Grades, "%T", e)
	}
}

func TestReduce_CalculateGuards(t *testing.T) {
	s := apply(t, New(false), Calculate{})
	assert.ErrorIs(t, s.Err, ErrCalcTypeNotSelected)

	s = apply(t, s, SelectCalcType{Type: domain.CalcSPI}, Calculate{})
	assert.ErrorIs(t, s.Err, ErrSemesterNotSelected)

	s = apply(t, s, SelectSemester{Number: 2}, Calculate{})
	assert.ErrorIs(t, s.Err, ErrNotConfirmed)

	s = apply(t, New(false), SelectCalcType{Type: domain.CalcCPI}, SelectSemester{Number: 2}, Confirm{}, Calculate{})
	assert.ErrorIs(t, s.Err, ErrCPIModeNotSelected)
}

func TestReduce_CPISemesterOneEqualsSPI(t *testing.T) {
	s := apply(t, New(false), SelectCalcType{Type: domain.CalcCPI}, SelectSemester{Number: 1}, Confirm{})
	assert.True(t, s.ShowGradeInput())
	assert.False(t, s.ShowCPIOptions())

	s = apply(t, s, fillGrades(s, "7.5")...)
	s = apply(t, s, Calculate{})
	require.NoError(t, s.Err)
	require.NotNil(t, s.SPI)
	require.NotNil(t, s.CPI)
	assert.Equal(t, *s.SPI, *s.CPI)
}

func TestReduce_CPIFromSPI(t *testing.T) {
	s := apply(t, New(false),
		SelectCalcType{Type: domain.CalcCPI},
		SelectSemester{Number: 2},
		Confirm{},
		SelectCPIMode{Mode: domain.CPIFromSPI},
	)
	assert.False(t, s.ShowGradeInput())
	assert.True(t, s.CanCalculate())

	s = apply(t, s, UpdatePreviousCPI{Text: "8"}, UpdateCurrentSPI{Text: "9"}, Calculate{})
	require.NoError(t, s.Err)
	require.NotNil(t, s.CPI)
	assert.InDelta(t, (8.0*46+9.0*44)/90, *s.CPI, 1e-9)
	assert.Equal(t, 9.0, *s.SPI)

	s = apply(t, s, UpdateCurrentSPI{Text: "abc"}, Calculate{})
	assert.ErrorIs(t, s.Err, engine.ErrInvalidCurrentSPI)
	assert.Nil(t, s.CPI)

	s = apply(t, s, UpdatePreviousCPI{Text: ""}, UpdateCurrentSPI{Text: "9"}, Calculate{})
	assert.ErrorIs(t, s.Err, engine.ErrInvalidPreviousCPI)
}

func TestReduce_CPIFromGrades(t *testing.T) {
	s := apply(t, New(false),
		SelectCalcType{Type: domain.CalcCPI},
		SelectSemester{Number: 2},
		Confirm{},
		SelectCPIMode{Mode: domain.CPIFromGrades},
	)
	require.True(t, s.ShowGradeInput())
	s = apply(t, s, fillGrades(s, "9")...)

	bad := apply(t, s, UpdatePreviousCPI{Text: "x"}, Calculate{})
	assert.ErrorIs(t, bad.Err, engine.ErrInvalidPreviousCPI)
	assert.Nil(t, bad.SPI)

	s = apply(t, s, UpdatePreviousCPI{Text: "8"}, Calculate{})
	require.NoError(t, s.Err)
	assert.InDelta(t, 9.0, *s.SPI, 1e-9)
	assert.InDelta(t, (8.0*46+9.0*44)/90, *s.CPI, 1e-9)
}

func TestReduce_SelectCPIModeClearsInputs(t *testing.T) {
	s := apply(t, New(false),
		SelectCalcType{Type: domain.CalcCPI},
		SelectSemester{Number: 4},
		Confirm{},
		SelectCPIMode{Mode: domain.CPIFromGrades},
		UpdateGrade{Index: 0, Text: "9"},
		UpdatePreviousCPI{Text: "8"},
		SelectCPIMode{Mode: domain.CPIFromSPI},
	)
	assert.Empty(t, s.PreviousCPI)
	assert.Equal(t, make([]string, 9), s.Grades)
}

func TestReduce_ResultsClearedOnEdit(t *testing.T) {
	s := apply(t, New(false), SelectCalcType{Type: domain.CalcSPI}, SelectSemester{Number: 1}, Confirm{})
	s = apply(t, s, fillGrades(s, "8")...)
	s = apply(t, s, Calculate{})
	require.True(t, s.HasResult())

	toggled := apply(t, s, ToggleGradeTable{})
	assert.True(t, toggled.HasResult())
	assert.True(t, toggled.ShowGradeTable)

	edited := apply(t, s, UpdateGrade{Index: 0, Text: "9"})
	assert.False(t, edited.HasResult())
}

func TestReduce_ResetKeepsSessionID(t *testing.T) {
	s := apply(t, New(true), SelectCalcType{Type: domain.CalcSPI}, SelectSemester{Number: 1}, Confirm{}, ToggleGradeTable{})
	r := apply(t, s, Reset{})

	assert.Equal(t, s.ID, r.ID)
	assert.True(t, r.AllowLetters)
	assert.Empty(t, r.CalcType)
	assert.Zero(t, r.Number)
	assert.False(t, r.Confirmed)
	assert.False(t, r.ShowGradeTable)
}
