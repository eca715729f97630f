package report

import (
	"fmt"
	"strings"
)

// ConstraintResult records the outcome of one named constraint check
// against a board.
type ConstraintResult struct {
	Name      string
	Satisfied bool
	Details   string
}

// Report is the diagnostic companion to a validator's compact outcome enum:
// it records which constraint checks passed or failed and which board
// positions (edge or cell indices) were marked ERROR along the way.
type Report struct {
	Outcome     string
	Results     []ConstraintResult
	ErrorCells  []int
	errorCellOK map[int]bool
}

// New creates an empty report for the given outcome label.
func New(outcome string) *Report {
	return &Report{
		Outcome:     outcome,
		errorCellOK: make(map[int]bool),
	}
}

// AddResult appends a constraint check outcome to the report.
func (r *Report) AddResult(name string, satisfied bool, details string) {
	r.Results = append(r.Results, ConstraintResult{Name: name, Satisfied: satisfied, Details: details})
}

// MarkError records a board position (edge or cell index) as ERROR. Marking
// the same position twice is a no-op.
func (r *Report) MarkError(index int) {
	if r.errorCellOK[index] {
		return
	}
	r.errorCellOK[index] = true
	r.ErrorCells = append(r.ErrorCells, index)
}

// HasErrors reports whether any constraint check failed.
func (r *Report) HasErrors() bool {
	for _, res := range r.Results {
		if !res.Satisfied {
			return true
		}
	}
	return false
}

// FailedConstraints returns every failed constraint result.
func (r *Report) FailedConstraints() []ConstraintResult {
	var failed []ConstraintResult
	for _, res := range r.Results {
		if !res.Satisfied {
			failed = append(failed, res)
		}
	}
	return failed
}

// Summary renders a human-readable rendition of the report, used by the CLI
// validate/solve subcommands.
func (r *Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Validation Report ===\n\nOutcome: %s\n\n", r.Outcome)

	passed := 0
	for _, res := range r.Results {
		if res.Satisfied {
			passed++
		}
	}
	fmt.Fprintf(&b, "Constraints passed: %d/%d\n", passed, len(r.Results))

	for i, res := range r.Results {
		status := "PASS"
		if !res.Satisfied {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  %d. [%s] %s: %s\n", i+1, status, res.Name, res.Details)
	}

	if len(r.ErrorCells) > 0 {
		b.WriteString("\nError positions:")
		for _, idx := range r.ErrorCells {
			fmt.Fprintf(&b, " %d", idx)
		}
		b.WriteString("\n")
	}

	return b.String()
}
