package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Track distinguishes curriculum variants offered within the same semester.
// Ordinary semesters use NoTrack.
type Track int

const NoTrack Track = 0

// SemesterID is the exact catalog key: a whole semester number plus an
// optional track. "7.1" is {Number: 7, Track: 1}.
type SemesterID struct {
	Number int
	Track  Track
}

// Sem returns the ID for an ordinary semester.
func Sem(number int) SemesterID {
	return SemesterID{Number: number}
}

// SemTrack returns the ID for a tracked semester such as 7.1.
func SemTrack(number int, track Track) SemesterID {
	return SemesterID{Number: number, Track: track}
}

// HasTrack reports whether the ID names a sub-option.
func (id SemesterID) HasTrack() bool {
	return id.Track != NoTrack
}

// Less orders IDs by number, then track.
func (id SemesterID) Less(other SemesterID) bool {
	if id.Number != other.Number {
		return id.Number < other.Number
	}
	return id.Track < other.Track
}

func (id SemesterID) String() string {
	if id.Track == NoTrack {
		return strconv.Itoa(id.Number)
	}
	return fmt.Sprintf("%d.%d", id.Number, id.Track)
}

// ParseSemesterID accepts "3", "7.1" or "7/1". The track suffix is a single
// digit; "7.10" is rejected rather than read as a decimal.
func ParseSemesterID(s string) (SemesterID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SemesterID{}, fmt.Errorf("semester id is empty")
	}

	numPart, trackPart, hasTrack := strings.Cut(s, ".")
	if !hasTrack {
		numPart, trackPart, hasTrack = strings.Cut(s, "/")
	}

	n, err := strconv.Atoi(numPart)
	if err != nil || n <= 0 {
		return SemesterID{}, fmt.Errorf("invalid semester number %q", numPart)
	}
	if !hasTrack {
		return Sem(n), nil
	}

	t, err := strconv.Atoi(trackPart)
	if err != nil || len(trackPart) != 1 || t <= 0 {
		return SemesterID{}, fmt.Errorf("invalid semester track %q", trackPart)
	}
	return SemTrack(n, Track(t)), nil
}

// Course is one row of a semester's course list.
type Course struct {
	Code   string
	Name   string
	Credit float64
}

// Semester is an immutable catalog record. CumulativeCredit covers every
// semester up to and including this one.
type Semester struct {
	ID               SemesterID
	Courses          []Course
	TotalCredit      float64
	CumulativeCredit float64
}

func (s Semester) CourseCount() int {
	return len(s.Courses)
}

// Codes returns the course codes in catalog order.
func (s Semester) Codes() []string {
	out := make([]string, len(s.Courses))
	for i, c := range s.Courses {
		out[i] = c.Code
	}
	return out
}

// Names returns the course display names in catalog order.
func (s Semester) Names() []string {
	out := make([]string, len(s.Courses))
	for i, c := range s.Courses {
		out[i] = c.Name
	}
	return out
}

// Credits returns the course credit weights in catalog order.
func (s Semester) Credits() []float64 {
	out := make([]float64, len(s.Courses))
	for i, c := range s.Courses {
		out[i] = c.Credit
	}
	return out
}

// Clone returns a copy whose course slice does not alias the receiver's.
func (s Semester) Clone() Semester {
	out := s
	out.Courses = append([]Course(nil), s.Courses...)
	return out
}
