package cli

import (
	"fmt"

	"github.com/alexanderramin/gradepoint/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSemestersCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "semesters",
		Aliases: []string{"sem"},
		Short:   "List the semesters in the curriculum",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			semesters := app.Calculator.Semesters(cmd.Context())

			if asJSON {
				out := make([]semesterJSON, 0, len(semesters))
				for _, s := range semesters {
					out = append(out, toSemesterJSON(s))
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSemesterList(semesters))
			return nil
		},
	}

	addJSONFlag(cmd.Flags(), &asJSON)
	return cmd
}
