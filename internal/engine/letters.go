package engine

import (
	"strconv"
	"strings"
)

// LetterGrade maps a letter grade to its grade point.
type LetterGrade struct {
	Letter string
	Points float64
}

var letterGrades = []LetterGrade{
	{"AA", 10},
	{"AB", 9},
	{"BB", 8},
	{"BC", 7},
	{"CC", 6},
	{"CD", 5},
	{"DD", 4},
	{"FF", 0},
}

// LetterGrades returns the grade point table, highest first.
func LetterGrades() []LetterGrade {
	out := make([]LetterGrade, len(letterGrades))
	copy(out, letterGrades)
	return out
}

// PointsForLetter looks up a letter grade case-insensitively.
func PointsForLetter(letter string) (float64, bool) {
	l := strings.ToUpper(strings.TrimSpace(letter))
	for _, g := range letterGrades {
		if g.Letter == l {
			return g.Points, true
		}
	}
	return 0, false
}

// ResolveGradeToken replaces a letter grade with its grade point text.
// Any other token is returned unchanged for ValidateGradeToken to classify.
func ResolveGradeToken(text string) string {
	if p, ok := PointsForLetter(text); ok {
		return strconv.FormatFloat(p, 'f', -1, 64)
	}
	return text
}
