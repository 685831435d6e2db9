package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gradepoint/internal/app"
	"github.com/alexanderramin/gradepoint/internal/catalog"
	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/alexanderramin/gradepoint/internal/engine"
)

type calculatorService struct {
	catalog  *catalog.Catalog
	observer UseCaseObserver
}

func NewCalculatorService(cat *catalog.Catalog, observers ...UseCaseObserver) CalculatorService {
	return &calculatorService{
		catalog:  cat,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *calculatorService) Semesters(ctx context.Context) []domain.Semester {
	return s.catalog.Semesters()
}

func (s *calculatorService) Lookup(ctx context.Context, id domain.SemesterID) (domain.Semester, error) {
	return s.catalog.Lookup(id)
}

func (s *calculatorService) SPI(ctx context.Context, req app.SPIRequest) (resp *app.SPIResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"semester": req.Semester.String(),
		"grades":   len(req.Grades),
	}
	defer func() {
		if resp != nil {
			fields["spi"] = resp.SPI
		}
		observe(ctx, s.observer, "spi", startedAt, fields, err)
	}()

	sem, err := s.catalog.Lookup(req.Semester)
	if err != nil {
		return nil, err
	}

	grades, err := engine.ParseGradeSet(req.Semester, resolveTokens(req.Grades, req.AllowLetters), sem.CourseCount())
	if err != nil {
		return nil, err
	}

	spi, err := engine.ComputeSPI(s.catalog, req.Semester, grades)
	if err != nil {
		return nil, err
	}

	return &app.SPIResponse{Semester: sem, Grades: grades, SPI: spi}, nil
}

func (s *calculatorService) CPI(ctx context.Context, req app.CPIRequest) (resp *app.CPIResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"semester": req.Semester.String(),
		"mode":     string(req.Mode),
	}
	defer func() {
		if resp != nil {
			fields["spi"] = resp.SPI
			fields["cpi"] = resp.CPI
		}
		observe(ctx, s.observer, "cpi", startedAt, fields, err)
	}()

	sem, err := s.catalog.Lookup(req.Semester)
	if err != nil {
		return nil, err
	}

	mode := req.Mode
	if req.Semester.Number <= 1 {
		// No earlier semester to blend with: CPI is this semester's SPI.
		mode = domain.CPIFromGrades
	}

	var res engine.CPIResult
	switch mode {
	case domain.CPIFromGrades:
		res, err = engine.ComputeCPIFromTokens(s.catalog, req.Semester, req.PreviousCPI, resolveTokens(req.Grades, req.AllowLetters))
	case domain.CPIFromSPI:
		res, err = engine.ComputeCPIFromText(s.catalog, req.Semester, req.PreviousCPI, req.CurrentSPI)
	default:
		return nil, &app.RequestError{
			Code:    app.RequestErrInvalidMode,
			Message: fmt.Sprintf("unknown cpi mode %q", req.Mode),
		}
	}
	if err != nil {
		return nil, err
	}

	return &app.CPIResponse{
		Semester: sem,
		Mode:     mode,
		SPI:      res.SPI,
		CPI:      res.CPI,
		Blended:  req.Semester.Number > 1,
	}, nil
}

func resolveTokens(tokens []string, allowLetters bool) []string {
	if !allowLetters {
		return tokens
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = engine.ResolveGradeToken(t)
	}
	return out
}
