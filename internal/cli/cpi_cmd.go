package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/gradepoint/internal/app"
	"github.com/alexanderramin/gradepoint/internal/cli/formatter"
	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/spf13/cobra"
)

var (
	errSPIAndGrades   = errors.New("use either --spi or --grade, not both")
	errSPIOnSemester1 = errors.New("--spi needs an earlier semester to blend with; give semester 1 grades with --grade")
)

func newCPICmd(a *App) *cobra.Command {
	var (
		prevCPI string
		spi     string
		grades  []string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "cpi <semester>",
		Short: "Compute the cumulative performance index",
		Long: `Compute the CPI after a semester from the CPI of all earlier semesters and
either this semester's SPI (--spi) or its grades (--grade). Semester 1 takes
grades only: its CPI is the SPI and --prev-cpi is not needed.`,
		Example: `  gradepoint cpi 4 --prev-cpi 8.2 --spi 9.1
  gradepoint cpi 1 -g 9,8,10,7,9,8,9,10,8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSemesterArg(args[0])
			if err != nil {
				return err
			}

			fromSPI := cmd.Flags().Changed("spi")
			if fromSPI && len(grades) > 0 {
				return errSPIAndGrades
			}
			if fromSPI && id.Number <= 1 {
				return errSPIOnSemester1
			}

			req := app.NewCPIRequest(id)
			req.PreviousCPI = prevCPI
			req.AllowLetters = a.Config.AllowLetters
			if fromSPI {
				req.Mode = domain.CPIFromSPI
				req.CurrentSPI = spi
			} else {
				req.Grades, err = a.collectGrades(cmd.Context(), id, grades)
				if err != nil {
					return err
				}
			}

			resp, err := a.Calculator.CPI(cmd.Context(), req)
			if err != nil {
				return asUserError(err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toCPIJSON(resp))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCPI(resp, a.Config.Precision))
			return nil
		},
	}

	cmd.Flags().StringVar(&prevCPI, "prev-cpi", "", "CPI over all earlier semesters")
	cmd.Flags().StringVar(&spi, "spi", "", "This semester's SPI")
	addGradeFlag(cmd.Flags(), &grades)
	addJSONFlag(cmd.Flags(), &asJSON)
	return cmd
}
