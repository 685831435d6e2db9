package service

import "github.com/alexanderramin/gradepoint/internal/app"

// CalculatorService serves the catalog and both index calculations.
type CalculatorService interface {
	app.CatalogUseCase
	app.SPIUseCase
	app.CPIUseCase
}
