package cli

import (
	"fmt"

	"github.com/alexanderramin/gradepoint/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCoursesCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "courses <semester>",
		Short: "Show the course list and credits for a semester",
		Example: `  gradepoint courses 3
  gradepoint courses 7.1 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSemesterArg(args[0])
			if err != nil {
				return err
			}

			sem, err := app.Calculator.Lookup(cmd.Context(), id)
			if err != nil {
				return asUserError(err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toSemesterJSON(sem))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourses(sem))
			return nil
		},
	}

	addJSONFlag(cmd.Flags(), &asJSON)
	return cmd
}
