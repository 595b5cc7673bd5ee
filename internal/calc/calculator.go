package calc

import (
	"github.com/sirupsen/logrus"
)

// ErrorToken is shown on the display when evaluation fails
const ErrorToken = "Error"

// ClearKey drops the pending input
const ClearKey = "C"

// Keypad layout, row by row
var Keypad = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", "=", "+"},
}

// Calculator accumulates keypad input and evaluates it on demand.
type Calculator struct {
	expr      string
	evaluator *Evaluator
	logger    *logrus.Entry
}

// NewCalculator creates a calculator with empty input
func NewCalculator(logger *logrus.Entry) *Calculator {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Calculator{
		evaluator: NewEvaluator(),
		logger:    logger.WithField("component", "calc"),
	}
}

// Append adds token to the pending input and returns the new display text
func (c *Calculator) Append(token string) string {
	c.expr += token
	return c.expr
}

// Evaluate computes the pending input. On success the display and the
// pending input both become the result; on failure the display shows
// ErrorToken and the pending input is cleared.
func (c *Calculator) Evaluate() string {
	value, err := c.evaluator.Evaluate(c.expr)
	if err != nil {
		c.logger.WithFields(logrus.Fields{"expr": c.expr, "error": err}).Debug("evaluation failed")
		c.expr = ""
		return ErrorToken
	}
	c.expr = FormatResult(value)
	return c.expr
}

// Clear drops the pending input
func (c *Calculator) Clear() string {
	c.expr = ""
	return c.expr
}

// Press dispatches a keypad token: "=" evaluates, ClearKey clears and
// anything else is appended
func (c *Calculator) Press(token string) string {
	switch token {
	case "=":
		return c.Evaluate()
	case ClearKey:
		return c.Clear()
	}
	return c.Append(token)
}

// Expression returns the pending input
func (c *Calculator) Expression() string {
	return c.expr
}
