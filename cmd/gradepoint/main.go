package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/gradepoint/internal/catalog"
	"github.com/alexanderramin/gradepoint/internal/cli"
	"github.com/alexanderramin/gradepoint/internal/config"
	"github.com/alexanderramin/gradepoint/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// Embedded curriculum unless GRADEPOINT_CURRICULUM points elsewhere.
	cat := catalog.Default()
	if cfg.CurriculumPath != "" {
		loaded, err := catalog.LoadFile(cfg.CurriculumPath)
		if err != nil {
			return fmt.Errorf("loading curriculum: %w", err)
		}
		cat = loaded
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Calculator:   service.NewCalculatorService(cat, observer),
		Catalog:      cat,
		Config:       cfg,
		PromptGrades: cli.NewHuhGradePrompter(cfg.AllowLetters),
	}

	// Detect interactive terminal for prompts and the shell entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
