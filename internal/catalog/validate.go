package catalog

import (
	"fmt"
	"math"
	"slices"

	"github.com/alexanderramin/gradepoint/internal/domain"
)

const creditTolerance = 1e-9

// Validate checks a set of semester records for structural problems.
// Returns a slice of all validation errors found.
func Validate(semesters []domain.Semester) []error {
	var errs []error

	seen := make(map[domain.SemesterID]bool, len(semesters))
	for _, s := range semesters {
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("semester %s: duplicate entry", s.ID))
			continue
		}
		seen[s.ID] = true
		errs = append(errs, validateSemester(s)...)
	}

	errs = append(errs, validateTracks(semesters)...)
	errs = append(errs, validateCumulative(semesters)...)

	return errs
}

func validateSemester(s domain.Semester) []error {
	var errs []error
	prefix := "semester " + s.ID.String()

	if s.ID.Number <= 0 {
		errs = append(errs, fmt.Errorf("%s: semester number must be positive", prefix))
	}
	if s.ID.Track < 0 {
		errs = append(errs, fmt.Errorf("%s: track must not be negative", prefix))
	}
	if len(s.Courses) == 0 {
		errs = append(errs, fmt.Errorf("%s: no courses", prefix))
	}

	var sum float64
	for i, c := range s.Courses {
		if c.Code == "" {
			errs = append(errs, fmt.Errorf("%s: course %d: code is required", prefix, i+1))
		}
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s: course %d: name is required", prefix, i+1))
		}
		if !(c.Credit > 0) || math.IsInf(c.Credit, 0) {
			errs = append(errs, fmt.Errorf("%s: course %d: credit must be positive, got %v", prefix, i+1, c.Credit))
		}
		sum += c.Credit
	}

	if s.TotalCredit < 0 {
		errs = append(errs, fmt.Errorf("%s: total_credit must not be negative", prefix))
	}
	if len(s.Courses) > 0 && math.Abs(sum-s.TotalCredit) > creditTolerance {
		errs = append(errs, fmt.Errorf("%s: total_credit %v does not match course credits %v", prefix, s.TotalCredit, sum))
	}
	if s.CumulativeCredit < s.TotalCredit {
		errs = append(errs, fmt.Errorf("%s: cumulative_credit %v is less than total_credit %v", prefix, s.CumulativeCredit, s.TotalCredit))
	}

	return errs
}

// validateTracks rejects a number that mixes a plain entry with tracked
// entries, and tracks of one number that disagree on cumulative credit.
func validateTracks(semesters []domain.Semester) []error {
	var errs []error

	plain := make(map[int]bool)
	tracked := make(map[int]bool)
	cumulative := make(map[int]float64)
	for _, s := range semesters {
		if s.ID.HasTrack() {
			tracked[s.ID.Number] = true
		} else {
			plain[s.ID.Number] = true
		}
		if prev, ok := cumulative[s.ID.Number]; ok {
			if math.Abs(prev-s.CumulativeCredit) > creditTolerance {
				errs = append(errs, fmt.Errorf("semester %d: tracks disagree on cumulative_credit (%v vs %v)", s.ID.Number, prev, s.CumulativeCredit))
			}
			continue
		}
		cumulative[s.ID.Number] = s.CumulativeCredit
	}

	numbers := make([]int, 0, len(plain))
	for n := range plain {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	for _, n := range numbers {
		if tracked[n] {
			errs = append(errs, fmt.Errorf("semester %d: mixes a plain entry with tracked entries", n))
		}
	}

	return errs
}

// validateCumulative checks that cumulative credit never decreases in
// semester order.
func validateCumulative(semesters []domain.Semester) []error {
	sorted := slices.Clone(semesters)
	slices.SortStableFunc(sorted, func(a, b domain.Semester) int {
		switch {
		case a.ID.Less(b.ID):
			return -1
		case b.ID.Less(a.ID):
			return 1
		}
		return 0
	})

	var errs []error
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.ID.Number == cur.ID.Number {
			continue
		}
		if cur.CumulativeCredit < prev.CumulativeCredit {
			errs = append(errs, fmt.Errorf("semester %s: cumulative_credit %v decreases from semester %s (%v)",
				cur.ID, cur.CumulativeCredit, prev.ID, prev.CumulativeCredit))
		}
	}
	return errs
}
