package calc

// Package calc implements the calculator app: an input accumulator driven by
// keypad tokens and an arithmetic evaluator backed by an embedded JavaScript
// engine restricted to plain arithmetic.
