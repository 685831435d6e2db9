package cli

import (
	"github.com/alexanderramin/gradepoint/internal/catalog"
	"github.com/alexanderramin/gradepoint/internal/config"
	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/alexanderramin/gradepoint/internal/service"
	"github.com/spf13/cobra"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=mock_calculator_test.go -package=cli github.com/alexanderramin/gradepoint/internal/service CalculatorService

// GradePrompter collects grades for a semester, starting from the tokens
// already given. It returns one token per course.
type GradePrompter func(sem domain.Semester, given []string) ([]string, error)

// App holds everything CLI commands need.
type App struct {
	Calculator service.CalculatorService
	// Catalog backs the interactive shell, which drives the session
	// reducer directly.
	Catalog *catalog.Catalog
	Config  config.Config

	// IsInteractive reports whether stdin is a terminal. nil means never.
	IsInteractive func() bool
	// PromptGrades fills in missing grades on an interactive terminal.
	PromptGrades GradePrompter
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "gradepoint" command and registers all
// subcommands against the provided App. Without a subcommand an interactive
// terminal opens the shell.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gradepoint",
		Short:         "SPI and CPI calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(cmd, app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newSemestersCmd(app),
		newCoursesCmd(app),
		newGradesCmd(app),
		newSPICmd(app),
		newCPICmd(app),
		newShellCmd(app),
	)

	return root
}
