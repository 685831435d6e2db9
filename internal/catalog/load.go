package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/gradepoint/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed curriculum.yaml
var curriculumYAML []byte

// CurriculumFile is the top-level YAML structure of a curriculum file.
type CurriculumFile struct {
	Semesters []SemesterEntry `yaml:"semesters"`
}

// SemesterEntry defines one semester (or one track of a semester).
type SemesterEntry struct {
	Semester         int           `yaml:"semester"`
	Track            int           `yaml:"track,omitempty"`
	TotalCredit      float64       `yaml:"total_credit"`
	CumulativeCredit float64       `yaml:"cumulative_credit"`
	Courses          []CourseEntry `yaml:"courses"`
}

// CourseEntry defines a course row.
type CourseEntry struct {
	Code   string  `yaml:"code"`
	Name   string  `yaml:"name"`
	Credit float64 `yaml:"credit"`
}

// Parse decodes a curriculum YAML document, checks it against the
// curriculum schema and builds a Catalog from it.
func Parse(data []byte) (*Catalog, error) {
	var file CurriculumFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing curriculum: %w", err)
	}
	if errs := ValidateSchema(data); len(errs) > 0 {
		return nil, fmt.Errorf("curriculum schema: %s", strings.Join(errs, "; "))
	}
	if len(file.Semesters) == 0 {
		return nil, fmt.Errorf("parsing curriculum: no semesters defined")
	}
	return New(file.toDomain())
}

// LoadFile reads and parses a curriculum YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading curriculum: %w", err)
	}
	return Parse(data)
}

func (f CurriculumFile) toDomain() []domain.Semester {
	out := make([]domain.Semester, 0, len(f.Semesters))
	for _, e := range f.Semesters {
		courses := make([]domain.Course, 0, len(e.Courses))
		for _, c := range e.Courses {
			courses = append(courses, domain.Course{Code: c.Code, Name: c.Name, Credit: c.Credit})
		}
		out = append(out, domain.Semester{
			ID:               domain.SemTrack(e.Semester, domain.Track(e.Track)),
			Courses:          courses,
			TotalCredit:      e.TotalCredit,
			CumulativeCredit: e.CumulativeCredit,
		})
	}
	return out
}
