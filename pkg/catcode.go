package texide

import "fmt"

// CatCode is one of the eleven category codes the lexer may actually
// attach to an emitted character token ("regular" category codes in TeX
// terminology).
type CatCode uint8

const (
	BeginGroup CatCode = iota
	EndGroup
	MathShift
	AlignmentTab
	Parameter
	Superscript
	Subscript
	Space
	Letter
	Other
	Active
)

// Int returns the 0..10 encoding of c.
func (c CatCode) Int() uint8 {
	return uint8(c)
}

// CatCodeFromInt decodes the inverse of Int, reporting false for any value
// outside 0..10.
func CatCodeFromInt(n uint8) (CatCode, bool) {
	if n > uint8(Active) {
		return 0, false
	}

	return CatCode(n), true
}

func (c CatCode) String() string {
	switch c {
	case BeginGroup:
		return "BeginGroup"
	case EndGroup:
		return "EndGroup"
	case MathShift:
		return "MathShift"
	case AlignmentTab:
		return "AlignmentTab"
	case Parameter:
		return "Parameter"
	case Superscript:
		return "Superscript"
	case Subscript:
		return "Subscript"
	case Space:
		return "Space"
	case Letter:
		return "Letter"
	case Other:
		return "Other"
	case Active:
		return "Active"
	default:
		return fmt.Sprintf("CatCode(%d)", uint8(c))
	}
}

// rawKind distinguishes a RawCatCode that wraps a regular CatCode from the
// five lexer-only raw codes that never escape tokenization as a character
// token's category.
type rawKind uint8

const (
	rawRegular rawKind = iota
	rawEscape
	rawEndOfLine
	rawIgnored
	rawComment
	rawInvalid
)

// RawCatCode is the full 16-value category code the lexer consults for
// every character it reads. Eleven of the values wrap a CatCode (regular
// codes, the ones a Token can carry); the remaining five drive lexing
// itself and never appear on an emitted Token.
type RawCatCode struct {
	kind    rawKind
	regular CatCode
}

// Regular wraps a CatCode as a RawCatCode.
func Regular(c CatCode) RawCatCode {
	return RawCatCode{kind: rawRegular, regular: c}
}

var (
	Escape    = RawCatCode{kind: rawEscape}
	EndOfLine = RawCatCode{kind: rawEndOfLine}
	Ignored   = RawCatCode{kind: rawIgnored}
	Comment   = RawCatCode{kind: rawComment}
	Invalid   = RawCatCode{kind: rawInvalid}
)

// IsRegular reports whether c wraps a CatCode, and returns it.
func (c RawCatCode) IsRegular() (CatCode, bool) {
	if c.kind != rawRegular {
		return 0, false
	}

	return c.regular, true
}

// Int returns the 0..15 TeX encoding of c.
func (c RawCatCode) Int() uint8 {
	switch c.kind {
	case rawEscape:
		return 0
	case rawEndOfLine:
		return 5
	case rawIgnored:
		return 9
	case rawComment:
		return 14
	case rawInvalid:
		return 15
	case rawRegular:
		switch c.regular {
		case BeginGroup:
			return 1
		case EndGroup:
			return 2
		case MathShift:
			return 3
		case AlignmentTab:
			return 4
		case Parameter:
			return 6
		case Superscript:
			return 7
		case Subscript:
			return 8
		case Space:
			return 10
		case Letter:
			return 11
		case Other:
			return 12
		case Active:
			return 13
		}
	}

	panic(fmt.Sprintf("texide: RawCatCode with invalid internal state: %+v", c))
}

// RawCatCodeFromInt decodes the inverse of Int, reporting false for any
// value outside 0..15.
func RawCatCodeFromInt(n uint8) (RawCatCode, bool) {
	switch n {
	case 0:
		return Escape, true
	case 1:
		return Regular(BeginGroup), true
	case 2:
		return Regular(EndGroup), true
	case 3:
		return Regular(MathShift), true
	case 4:
		return Regular(AlignmentTab), true
	case 5:
		return EndOfLine, true
	case 6:
		return Regular(Parameter), true
	case 7:
		return Regular(Superscript), true
	case 8:
		return Regular(Subscript), true
	case 9:
		return Ignored, true
	case 10:
		return Regular(Space), true
	case 11:
		return Regular(Letter), true
	case 12:
		return Regular(Other), true
	case 13:
		return Regular(Active), true
	case 14:
		return Comment, true
	case 15:
		return Invalid, true
	default:
		return RawCatCode{}, false
	}
}

func (c RawCatCode) String() string {
	switch c.kind {
	case rawRegular:
		return "Regular(" + c.regular.String() + ")"
	case rawEscape:
		return "Escape"
	case rawEndOfLine:
		return "EndOfLine"
	case rawIgnored:
		return "Ignored"
	case rawComment:
		return "Comment"
	case rawInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("RawCatCode(%d)", c.Int())
	}
}
