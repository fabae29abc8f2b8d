package expression

import "fmt"

type Operator int

const (
	Less Operator = iota
	LessEq
	Eq
	NotEq
	Greater
	GreaterEq
	Contains
	NotContains
	Matches
	ExactlyMatches
	In
)

type operatorKind int

const (
	binaryKind operatorKind = iota
	setKind
	inKind
)

func (o Operator) String() string {
	switch o {
	case Less:
		return "<"
	case LessEq:
		return "<="
	case Eq:
		return "=="
	case NotEq:
		return "!="
	case Greater:
		return ">"
	case GreaterEq:
		return ">="
	case Contains:
		return "contains"
	case NotContains:
		return "notContains"
	case Matches:
		return "matches"
	case ExactlyMatches:
		return "exactlyMatches"
	case In:
		return "in"
	default:
		panic(fmt.Errorf("unexpected operator %d", int(o)))
	}
}

// MultiValue reports whether the operand is a list of values.
func (o Operator) MultiValue() bool {
	return o.kind() != binaryKind
}

func (o Operator) kind() operatorKind {
	switch o {
	case Less, LessEq, Eq, NotEq, Greater, GreaterEq:
		return binaryKind
	case Contains, NotContains, Matches, ExactlyMatches:
		return setKind
	case In:
		return inKind
	default:
		panic(fmt.Errorf("unexpected operator %d", int(o)))
	}
}
