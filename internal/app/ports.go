package app

import (
	"context"

	"github.com/alexanderramin/gradepoint/internal/domain"
)

type CatalogUseCase interface {
	Semesters(ctx context.Context) []domain.Semester
	Lookup(ctx context.Context, id domain.SemesterID) (domain.Semester, error)
}

type SPIUseCase interface {
	SPI(ctx context.Context, req SPIRequest) (*SPIResponse, error)
}

type CPIUseCase interface {
	CPI(ctx context.Context, req CPIRequest) (*CPIResponse, error)
}
