// Package catalog holds the curriculum: the fixed mapping from semester to
// its ordered course list and credit totals. A Catalog is immutable once
// built and safe to share.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/alexanderramin/gradepoint/internal/domain"
)

// ErrNotFound indicates the semester id is not in the catalog.
var ErrNotFound = domain.ErrSemesterNotFound

// Catalog is a read-only semester registry keyed by domain.SemesterID.
type Catalog struct {
	semesters map[domain.SemesterID]domain.Semester
	order     []domain.SemesterID
}

// New validates the records and builds a Catalog from them. All validation
// problems are joined into the returned error.
func New(semesters []domain.Semester) (*Catalog, error) {
	if errs := Validate(semesters); len(errs) > 0 {
		return nil, fmt.Errorf("invalid curriculum: %w", errors.Join(errs...))
	}

	c := &Catalog{
		semesters: make(map[domain.SemesterID]domain.Semester, len(semesters)),
		order:     make([]domain.SemesterID, 0, len(semesters)),
	}
	for _, s := range semesters {
		c.semesters[s.ID] = s.Clone()
		c.order = append(c.order, s.ID)
	}
	slices.SortFunc(c.order, func(a, b domain.SemesterID) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Parse(curriculumYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded curriculum: %v", err))
	}
	return c
})

// Default returns the catalog built from the embedded curriculum.
func Default() *Catalog {
	return defaultCatalog()
}

// Lookup returns a copy of the semester record for id.
func (c *Catalog) Lookup(id domain.SemesterID) (domain.Semester, error) {
	s, ok := c.semesters[id]
	if !ok {
		return domain.Semester{}, fmt.Errorf("semester %s: %w", id, ErrNotFound)
	}
	return s.Clone(), nil
}

// Has reports whether id is a catalog key.
func (c *Catalog) Has(id domain.SemesterID) bool {
	_, ok := c.semesters[id]
	return ok
}

// Len returns the number of semester records.
func (c *Catalog) Len() int {
	return len(c.order)
}

// IDs returns every key in semester order.
func (c *Catalog) IDs() []domain.SemesterID {
	return slices.Clone(c.order)
}

// Semesters returns copies of every record in semester order.
func (c *Catalog) Semesters() []domain.Semester {
	out := make([]domain.Semester, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.semesters[id].Clone())
	}
	return out
}

// Numbers returns the distinct whole semester numbers in order.
func (c *Catalog) Numbers() []int {
	var out []int
	for _, id := range c.order {
		if len(out) == 0 || out[len(out)-1] != id.Number {
			out = append(out, id.Number)
		}
	}
	return out
}

// Tracks returns the tracks offered for a semester number. An ordinary
// semester yields nil.
func (c *Catalog) Tracks(number int) []domain.Track {
	var out []domain.Track
	for _, id := range c.order {
		if id.Number == number && id.HasTrack() {
			out = append(out, id.Track)
		}
	}
	return out
}

// CumulativeThrough returns the cumulative credit of every semester up to
// and including the whole semester number. Tracks of one semester share
// the same cumulative total, which Validate enforces.
func (c *Catalog) CumulativeThrough(number int) (float64, error) {
	for _, id := range c.order {
		if id.Number == number {
			return c.semesters[id].CumulativeCredit, nil
		}
	}
	return 0, fmt.Errorf("semester %d: %w", number, ErrNotFound)
}
