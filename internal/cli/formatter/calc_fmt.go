package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradepoint/internal/app"
	"github.com/alexanderramin/gradepoint/internal/domain"
	"github.com/alexanderramin/gradepoint/internal/engine"
)

const indexBarWidth = 20

// FormatSemesterList renders the catalog overview.
func FormatSemesterList(semesters []domain.Semester) string {
	rows := make([][]string, 0, len(semesters))
	for _, s := range semesters {
		rows = append(rows, []string{
			StyleBold.Render(s.ID.String()),
			strconv.Itoa(s.CourseCount()),
			FormatCredit(s.TotalCredit),
			Dim(FormatCredit(s.CumulativeCredit)),
		})
	}
	return Header("Curriculum") + "\n" + RenderTable([]string{"SEMESTER", "COURSES", "CREDITS", "CUMULATIVE"}, rows)
}

// FormatCourses renders one semester's course list.
func FormatCourses(s domain.Semester) string {
	rows := make([][]string, 0, len(s.Courses))
	for i, c := range s.Courses {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			StyleBlue.Render(c.Code),
			c.Name,
			FormatCredit(c.Credit),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Semester " + s.ID.String()))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"#", "CODE", "COURSE", "CREDIT"}, rows))
	b.WriteString(Dim(fmt.Sprintf("Total %s credits · %s cumulative", FormatCredit(s.TotalCredit), FormatCredit(s.CumulativeCredit))))
	b.WriteString("\n")
	return b.String()
}

// FormatSPI renders an SPI result with the per-course grades that produced it.
func FormatSPI(resp *app.SPIResponse, precision int) string {
	rows := make([][]string, 0, len(resp.Semester.Courses))
	for i, c := range resp.Semester.Courses {
		g := ""
		if i < len(resp.Grades) {
			g = FormatCredit(resp.Grades[i])
		}
		rows = append(rows, []string{StyleBlue.Render(c.Code), c.Name, FormatCredit(c.Credit), g})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"CODE", "COURSE", "CREDIT", "GRADE"}, rows))
	b.WriteString("\n")
	b.WriteString(IndexLine("SPI", resp.SPI, precision))

	return RenderBox("Semester "+resp.Semester.ID.String(), b.String()) + "\n"
}

// FormatCPI renders a CPI result.
func FormatCPI(resp *app.CPIResponse, precision int) string {
	var b strings.Builder
	b.WriteString(IndexLine("SPI", resp.SPI, precision))
	b.WriteString("\n")
	b.WriteString(IndexLine("CPI", resp.CPI, precision))
	if !resp.Blended {
		b.WriteString("\n")
		b.WriteString(Dim("First semester: CPI equals SPI."))
	}
	return RenderBox("Semester "+resp.Semester.ID.String(), b.String()) + "\n"
}

// IndexLine renders "LABEL  value  [bar]" for an SPI or CPI.
func IndexLine(label string, v float64, precision int) string {
	return fmt.Sprintf("%s  %s  %s",
		StyleBold.Render(label),
		IndexColor(v).Render(FormatIndex(v, precision)),
		RenderIndexBar(v, indexBarWidth))
}

// FormatGradeTable renders the letter grade to grade point table.
func FormatGradeTable(grades []engine.LetterGrade) string {
	rows := make([][]string, 0, len(grades))
	for _, g := range grades {
		rows = append(rows, []string{StyleBold.Render(g.Letter), FormatCredit(g.Points)})
	}
	return Header("Grade points") + "\n" + RenderTable([]string{"GRADE", "POINTS"}, rows)
}
