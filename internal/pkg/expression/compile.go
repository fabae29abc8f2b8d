package expression

import (
	"fmt"
	"strings"
)

const clauseSeparator = " && "

// Rule is a structured condition: the dimension, the operator and the operand.
// AppID is used by AppID dimension and by dimensions scoped to an app.
// Property is the user property name.
type Rule struct {
	Dimension Dimension
	Operator  Operator
	Operand   []string
	AppID     string
	Property  string
}

// Compile renders the rule into an expression string.
// The rule is not validated, callers offer only the legal operators, see Dimension.Operators.
func Compile(r Rule) string {
	var clauses []string
	if r.Dimension.ScopedToApp() {
		clauses = append(clauses, appIDClause(r.AppID))
	}

	if r.Dimension == AppID {
		clauses = append(clauses, appIDClause(r.AppID))
	} else {
		clauses = append(clauses, clause(r.Dimension.field(r.Property), r.Operator, r.Dimension, r.Operand))
	}

	return strings.Join(clauses, clauseSeparator)
}

// CompileAll renders rules joined by the "&&" operator.
func CompileAll(rules ...Rule) string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, Compile(r))
	}
	return strings.Join(out, clauseSeparator)
}

// Clauses splits a compiled expression to clauses, it is used to print long expressions.
func Clauses(expression string) []string {
	return strings.Split(expression, clauseSeparator)
}

func appIDClause(appID string) string {
	return fmt.Sprintf("%s == %s", AppID.field(""), quote(appID))
}

func clause(field string, op Operator, d Dimension, operand []string) string {
	switch op.kind() {
	case binaryKind:
		value := ""
		if len(operand) > 0 {
			value = operand[0]
		}
		literal := quote(value)
		if d == DeviceDateTime {
			literal = "dateTime(" + literal + ")"
		}
		return fmt.Sprintf("%s %s %s", field, op, literal)
	case setKind:
		return fmt.Sprintf("%s.%s(%s)", field, op, list(operand))
	case inKind:
		return fmt.Sprintf("%s in %s", field, list(operand))
	default:
		panic(fmt.Errorf("unexpected operator %d", int(op)))
	}
}

func list(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, quote(v))
	}
	return "[" + strings.Join(quoted, ",") + "]"
}

func quote(v string) string {
	return "'" + v + "'"
}
