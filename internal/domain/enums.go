package domain

type CalcType string

const (
	CalcSPI CalcType = "spi"
	CalcCPI CalcType = "cpi"
)

// CPIMode selects how the current semester enters the CPI blend.
type CPIMode string

const (
	// CPIFromGrades derives the current SPI from a full grade set first.
	CPIFromGrades CPIMode = "grades"
	// CPIFromSPI takes the current SPI as entered.
	CPIFromSPI CPIMode = "spi"
)

// CPIModes lists every CPI mode in display order.
var CPIModes = []CPIMode{CPIFromGrades, CPIFromSPI}

// TokenStatus classifies a raw grade token.
type TokenStatus string

const (
	TokenValid      TokenStatus = "valid"
	TokenEmpty      TokenStatus = "empty"
	TokenOutOfRange TokenStatus = "out_of_range"
	TokenUnparsable TokenStatus = "unparsable"
)

// Grade point bounds.
const (
	MinGrade = 0.0
	MaxGrade = 10.0
)
