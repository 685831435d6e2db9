package engine

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradepoint/internal/domain"
)

// Grades are plain decimals with an optional exponent. strconv.ParseFloat
// also takes hex floats and digit underscores; those are rejected up front.
var (
	decimalToken   = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	nonFiniteToken = regexp.MustCompile(`(?i)^[+-]?(inf|infinity|nan)$`)
)

// ValidateGradeToken classifies a raw grade token. The returned value is
// meaningful only when the status is domain.TokenValid.
func ValidateGradeToken(text string) (float64, domain.TokenStatus) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, domain.TokenEmpty
	}
	if !decimalToken.MatchString(s) && !nonFiniteToken.MatchString(s) {
		return 0, domain.TokenUnparsable
	}
	g, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, domain.TokenUnparsable
	}
	// Overflow parses to ±Inf and underflow to ±0; both classify by value.
	return g, classifyValue(g)
}

func classifyValue(g float64) domain.TokenStatus {
	switch {
	case math.IsNaN(g):
		return domain.TokenUnparsable
	case g < domain.MinGrade || g > domain.MaxGrade:
		return domain.TokenOutOfRange
	}
	return domain.TokenValid
}

// ParseGradeSet validates one token per course and converts them to grades.
// A length mismatch is reported before any token is inspected; otherwise the
// first rejected token is returned as a *GradeError.
func ParseGradeSet(id domain.SemesterID, tokens []string, courseCount int) ([]float64, error) {
	if len(tokens) != courseCount {
		return nil, &CountMismatchError{Semester: id, Want: courseCount, Got: len(tokens)}
	}

	grades := make([]float64, len(tokens))
	for i, tok := range tokens {
		g, status := ValidateGradeToken(tok)
		if status != domain.TokenValid {
			return nil, &GradeError{Position: i, Token: tok, Status: status}
		}
		grades[i] = g
	}
	return grades, nil
}

// ParseIndexToken parses a free-text CPI or SPI. field selects the error
// reported on failure and should be ErrInvalidPreviousCPI or
// ErrInvalidCurrentSPI.
func ParseIndexToken(text string, field error) (float64, error) {
	v, status := ValidateGradeToken(text)
	if status != domain.TokenValid {
		return 0, &IndexError{Field: field, Token: text, Status: status}
	}
	return v, nil
}

func checkIndexValue(v float64, field error) error {
	if status := classifyValue(v); status != domain.TokenValid {
		return &IndexError{Field: field, Token: strconv.FormatFloat(v, 'g', -1, 64), Status: status}
	}
	return nil
}
