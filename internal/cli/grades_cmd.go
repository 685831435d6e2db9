package cli

import (
	"fmt"

	"github.com/alexanderramin/gradepoint/internal/cli/formatter"
	"github.com/alexanderramin/gradepoint/internal/engine"
	"github.com/spf13/cobra"
)

func newGradesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "Show the letter grade to grade point table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGradeTable(engine.LetterGrades()))
			if !app.Config.AllowLetters {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Letter grades are disabled; enter grade points."))
			}
			return nil
		},
	}
}
