package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gradepoint/internal/app"
	"github.com/alexanderramin/gradepoint/internal/cli/formatter"
	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/spf13/cobra"
)

func newSPICmd(a *App) *cobra.Command {
	var grades []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "spi <semester>",
		Short: "Compute the semester performance index",
		Long: `Compute the SPI for one semester from a grade per course, given in the
order shown by "gradepoint courses <semester>". Grades are grade points
between 0 and 10, or letter grades (AA..FF) when enabled.`,
		Example: `  gradepoint spi 3 -g 9,8,10,7,9,8,9,10,8
  gradepoint spi 7.1 --grade AA --grade AB ...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSemesterArg(args[0])
			if err != nil {
				return err
			}

			tokens, err := a.collectGrades(cmd.Context(), id, grades)
			if err != nil {
				return err
			}

			resp, err := a.Calculator.SPI(cmd.Context(), app.SPIRequest{
				Semester:     id,
				Grades:       tokens,
				AllowLetters: a.Config.AllowLetters,
			})
			if err != nil {
				return asUserError(err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toSPIJSON(resp))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSPI(resp, a.Config.Precision))
			return nil
		},
	}

	addGradeFlag(cmd.Flags(), &grades)
	addJSONFlag(cmd.Flags(), &asJSON)
	return cmd
}

// collectGrades returns given unchanged unless it is short of the course
// count and a prompt is available on an interactive terminal.
func (a *App) collectGrades(ctx context.Context, id domain.SemesterID, given []string) ([]string, error) {
	if a.PromptGrades == nil || !a.interactive() {
		return given, nil
	}

	sem, err := a.Calculator.Lookup(ctx, id)
	if err != nil {
		return nil, asUserError(err)
	}
	if len(given) >= sem.CourseCount() {
		return given, nil
	}

	tokens, err := a.PromptGrades(sem, given)
	if err != nil {
		return nil, fmt.Errorf("reading grades: %w", err)
	}
	return tokens, nil
}
