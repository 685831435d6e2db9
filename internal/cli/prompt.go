package cli

import (
	"fmt"

	"github.com/alexanderramin/gradepoint/internal/cli/formatter"
	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/alexanderramin/gradepoint/internal/engine"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// gradepointHuhTheme returns a huh theme using the formatter palette.
func gradepointHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// gradeValidator accepts a grade point in [0, 10], or a letter grade when
// allowLetters is set.
func gradeValidator(allowLetters bool) func(string) error {
	return func(s string) error {
		if allowLetters {
			s = engine.ResolveGradeToken(s)
		}
		switch _, status := engine.ValidateGradeToken(s); status {
		case domain.TokenValid:
			return nil
		case domain.TokenEmpty:
			return fmt.Errorf("enter a grade")
		default:
			return fmt.Errorf("enter a number between 0 and 10")
		}
	}
}

// gradeForm builds one input per course, prefilled from given.
func gradeForm(sem domain.Semester, values []string, allowLetters bool) *huh.Form {
	fields := make([]huh.Field, 0, len(sem.Courses))
	for i, c := range sem.Courses {
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("%s %s", c.Code, c.Name)).
			Description(fmt.Sprintf("%s credits", formatter.FormatCredit(c.Credit))).
			Placeholder("0-10").
			Value(&values[i]).
			Validate(gradeValidator(allowLetters)))
	}
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(gradepointHuhTheme()).
		WithShowHelp(false)
}

// NewHuhGradePrompter returns a GradePrompter that asks for each course's
// grade in a terminal form.
func NewHuhGradePrompter(allowLetters bool) GradePrompter {
	return func(sem domain.Semester, given []string) ([]string, error) {
		values := make([]string, sem.CourseCount())
		copy(values, given)

		if err := gradeForm(sem, values, allowLetters).Run(); err != nil {
			return nil, err
		}
		return values, nil
	}
}
