package calc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dop251/goja"

	"github.com/ytget/workbench/internal/model"
)

// allowedChars is everything the keypad can produce, plus spaces
const allowedChars = "0123456789+-*/. "

// leadingZero matches integer literals such as "010"
var leadingZero = regexp.MustCompile(`(^|[^0-9.])0[0-9]`)

// Evaluator computes arithmetic expressions.
type Evaluator struct {
	vm *goja.Runtime
}

// NewEvaluator creates an evaluator with its own JavaScript runtime
func NewEvaluator() *Evaluator {
	return &Evaluator{vm: goja.New()}
}

// Evaluate returns the value of expr. Only digits, "+ - * /", "." and spaces
// are accepted; anything else, malformed input and non-finite results are
// reported as model.ErrExpressionEvaluation.
func (e *Evaluator) Evaluate(expr string) (float64, error) {
	if err := validate(expr); err != nil {
		return 0, err
	}

	program, err := goja.Compile("calculator", separateSigns(expr), true)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", model.ErrExpressionEvaluation, expr, err)
	}
	value, err := e.vm.RunProgram(program)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", model.ErrExpressionEvaluation, expr, err)
	}
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return 0, fmt.Errorf("%w: %q: no value", model.ErrExpressionEvaluation, expr)
	}

	result := value.ToFloat()
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w: %q: result is not finite", model.ErrExpressionEvaluation, expr)
	}
	return result, nil
}

// validate keeps the engine limited to arithmetic
func validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return fmt.Errorf("%w: empty expression", model.ErrExpressionEvaluation)
	}
	for _, r := range expr {
		if !strings.ContainsRune(allowedChars, r) {
			return fmt.Errorf("%w: unexpected character %q", model.ErrExpressionEvaluation, r)
		}
	}
	// "//" would start a JavaScript comment and silently drop the rest
	if strings.Contains(expr, "//") || strings.Contains(expr, "/*") {
		return fmt.Errorf("%w: %q: malformed operator", model.ErrExpressionEvaluation, expr)
	}
	if leadingZero.MatchString(expr) {
		return fmt.Errorf("%w: %q: leading zero in number", model.ErrExpressionEvaluation, expr)
	}
	return nil
}

// separateSigns puts a space between adjacent "+" and "-" so runs like
// "2--3" read as unary signs instead of increment or decrement operators
func separateSigns(expr string) string {
	var b strings.Builder
	b.Grow(len(expr) * 2)
	var prev rune
	for _, r := range expr {
		if isSign(r) && isSign(prev) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func isSign(r rune) bool {
	return r == '+' || r == '-'
}

// FormatResult renders v without exponent or trailing zeros
func FormatResult(v float64) string {
	if v == 0 {
		// Avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
