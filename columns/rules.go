package columns

import (
	"fmt"
	"strings"

	"github.com/mariokirby1703/pemon-information-table/levels"
	"gopkg.in/Knetic/govaluate.v2"
)

// ClassRule applies Class to a cell when Expression evaluates to true for the
// row. Expressions use the json keys of a level as parameters, e.g.
// difficulty == 'Easy Demon'. canonical(x) maps a vocabulary value written in
// any case to its listed spelling.
type ClassRule struct {
	Class      string
	Expression string
	expr       *govaluate.EvaluableExpression
}

func NewClassRule(class, expression string) (ClassRule, error) {
	if strings.TrimSpace(class) == "" {
		return ClassRule{}, fmt.Errorf("class rule without class name")
	}
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(expression, ruleFunctions)
	if err != nil {
		return ClassRule{}, fmt.Errorf("class rule %s: %w", class, err)
	}
	return ClassRule{Class: class, Expression: expression, expr: expr}, nil
}

// Match evaluates the rule. Evaluation errors and non boolean results count
// as no match.
func (r ClassRule) Match(row levels.Level) bool {
	if r.expr == nil {
		return false
	}
	result, err := r.expr.Eval(row)
	if err != nil {
		return false
	}
	matched, ok := result.(bool)
	return ok && matched
}

var ruleFunctions = map[string]govaluate.ExpressionFunction{
	"canonical": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("canonical takes one argument, got %d", len(args))
		}
		value, ok := args[0].(string)
		if !ok {
			return args[0], nil
		}
		return levels.Canonical(value), nil
	},
}

// RuleConfig is the plain, comparable form of a ClassRule.
type RuleConfig struct {
	Class      string
	Expression string
}

// ValueClass derives the class name for a vocabulary value from its first
// word: "Easy Demon" becomes "easy".
func ValueClass(value string) string {
	words := strings.Fields(value)
	if len(words) == 0 {
		return ""
	}
	return strings.ToLower(words[0])
}

// vocabRules builds one equality rule per vocabulary value, matching the way
// levels.Rank orders them. overrides maps a value to a custom class name.
func vocabRules(field string, vocab []string, overrides map[string]string) ([]ClassRule, error) {
	rules := make([]ClassRule, 0, len(vocab))
	for _, value := range vocab {
		class := ValueClass(value)
		if custom, ok := overrides[value]; ok && custom != "" {
			class = custom
		}
		expression := fmt.Sprintf("canonical(%s) == '%s'", field, value)
		rule, err := NewClassRule(class, expression)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
