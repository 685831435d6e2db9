package engine

import (
	"fmt"

	"github.com/alexanderramin/gradepoint/internal/domain"
)

// CPIResult carries the SPI that fed a CPI blend alongside the CPI itself.
type CPIResult struct {
	SPI float64
	CPI float64
}

// ComputeCPI blends previousCPI, which covers every semester before id, with
// currentSPI for id, weighting each by its credits. Tracked semesters blend
// against the previous whole semester: 7.1 uses semester 6's cumulative
// credit. For semester 1 the CPI is currentSPI unchanged.
func ComputeCPI(cat Catalog, id domain.SemesterID, previousCPI, currentSPI float64) (float64, error) {
	cur, err := cat.Lookup(id)
	if err != nil {
		return 0, err
	}
	if err := checkIndexValue(currentSPI, ErrInvalidCurrentSPI); err != nil {
		return 0, err
	}
	if id.Number <= 1 {
		return currentSPI, nil
	}
	if err := checkIndexValue(previousCPI, ErrInvalidPreviousCPI); err != nil {
		return 0, err
	}

	prevCumulative, err := cat.CumulativeThrough(id.Number - 1)
	if err != nil {
		return 0, err
	}
	total := prevCumulative + cur.TotalCredit
	if total == 0 {
		return 0, fmt.Errorf("semester %s: %w", id, ErrDegenerateSemester)
	}

	return (previousCPI*prevCumulative + currentSPI*cur.TotalCredit) / total, nil
}

// ComputeCPIFromGrades computes the current SPI from grades, then blends it
// with previousCPI.
func ComputeCPIFromGrades(cat Catalog, id domain.SemesterID, previousCPI float64, grades []float64) (CPIResult, error) {
	spi, err := ComputeSPI(cat, id, grades)
	if err != nil {
		return CPIResult{}, err
	}
	cpi, err := ComputeCPI(cat, id, previousCPI, spi)
	if err != nil {
		return CPIResult{}, err
	}
	return CPIResult{SPI: spi, CPI: cpi}, nil
}

// ComputeCPIFromText is the free-text form of ComputeCPI. previousText is
// ignored for semester 1.
func ComputeCPIFromText(cat Catalog, id domain.SemesterID, previousText, spiText string) (CPIResult, error) {
	if _, err := cat.Lookup(id); err != nil {
		return CPIResult{}, err
	}
	var previous float64
	if id.Number > 1 {
		v, err := ParseIndexToken(previousText, ErrInvalidPreviousCPI)
		if err != nil {
			return CPIResult{}, err
		}
		previous = v
	}
	spi, err := ParseIndexToken(spiText, ErrInvalidCurrentSPI)
	if err != nil {
		return CPIResult{}, err
	}
	cpi, err := ComputeCPI(cat, id, previous, spi)
	if err != nil {
		return CPIResult{}, err
	}
	return CPIResult{SPI: spi, CPI: cpi}, nil
}

// ComputeCPIFromTokens validates grade tokens and the previous CPI text,
// then computes SPI and CPI together.
func ComputeCPIFromTokens(cat Catalog, id domain.SemesterID, previousText string, tokens []string) (CPIResult, error) {
	spi, err := ComputeSPIFromTokens(cat, id, tokens)
	if err != nil {
		return CPIResult{}, err
	}
	if id.Number <= 1 {
		return CPIResult{SPI: spi, CPI: spi}, nil
	}
	previous, err := ParseIndexToken(previousText, ErrInvalidPreviousCPI)
	if err != nil {
		return CPIResult{}, err
	}
	cpi, err := ComputeCPI(cat, id, previous, spi)
	if err != nil {
		return CPIResult{}, err
	}
	return CPIResult{SPI: spi, CPI: cpi}, nil
}
