// Package present displays the results of the formula engine.
//
// It is the only package that knows about the terminal: the engine itself produces
// plain data, which is classified and rendered here, either as styled text or as JSON.
package present

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/propcalc/tautology/resolver"
)

// Classification tells whether a formula is always, never or sometimes true.
type Classification byte

const (
	// Tautology means the formula is true under every assignment.
	Tautology = Classification(iota)
	// Contradiction means the formula is false under every assignment.
	Contradiction
	// Contingency means the formula is true under some assignments and false under others.
	Contingency
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "Tautology"
	case Contradiction:
		return "Contradiction"
	case Contingency:
		return "Contingency"
	default:
		panic("invalid classification")
	}
}

// Badge returns the symbol associated with c.
func (c Classification) Badge() string {
	switch c {
	case Tautology:
		return "✓"
	case Contradiction:
		return "✗"
	case Contingency:
		return "~"
	default:
		panic("invalid classification")
	}
}

// Classify returns the classification of the formula evaluated in res, which must be successful.
// The tableau verdict decides tautologies; contradictions are read from the truth table.
func Classify(res resolver.Result) Classification {
	if !res.Success {
		panic("cannot classify a failed evaluation")
	}
	if res.IsTautology {
		return Tautology
	}
	if len(res.TruthTable.Rows) > 0 && res.TruthTable.AllFalse() {
		return Contradiction
	}
	return Contingency
}

// A Renderer writes evaluation results.
type Renderer interface {
	Render(w io.Writer, input string, res resolver.Result) error
}

// Text renders results as styled text, with the truth table drawn as a grid.
type Text struct{}

// Render writes res, the evaluation of input, on w.
func (Text) Render(w io.Writer, input string, res resolver.Result) error {
	var sb strings.Builder
	line := func(label, value string) {
		sb.WriteString(LabelStyle.Render(label) + value + "\n")
	}
	line("Formula:", FormulaStyle.Render(strings.TrimSpace(input)))
	if !res.Success {
		line("Error:", ErrorStyle.Render(res.Error))
		_, err := io.WriteString(w, sb.String())
		return err
	}
	c := Classify(res)
	line("Structure:", res.AST)
	line("Result:", badgeStyles[c].Render(c.Badge()+" "+c.String()))
	if res.CounterModel != nil {
		line("Falsified:", formatModel(res.TruthTable.Variables, res.CounterModel))
	}
	sb.WriteString(truthTable(res) + "\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// formatModel returns the bindings of vars in model, in the order of vars.
func formatModel(vars []string, model map[string]bool) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = fmt.Sprintf("%s=%t", v, model[v])
	}
	return strings.Join(parts, ", ")
}

// truthTable draws the truth table of res, with one column per variable plus the result.
func truthTable(res resolver.Result) string {
	tt := res.TruthTable
	rows := make([][]string, len(tt.Rows))
	for i, row := range tt.Rows {
		cells := make([]string, 0, len(tt.Variables)+1)
		for _, v := range tt.Variables {
			cells = append(cells, cell(row.Assignment[v]))
		}
		rows[i] = append(cells, cell(row.Result))
	}
	headers := append(append([]string{}, tt.Variables...), res.AST)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorMuted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		}).
		Render()
}

func cell(b bool) string {
	if b {
		return TrueStyle.Render("true")
	}
	return FalseStyle.Render("false")
}

// JSON renders results as indented JSON documents.
type JSON struct{}

// Render writes res on w. input is not written: the result holds the canonical formula.
func (JSON) Render(w io.Writer, input string, res resolver.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("could not encode result: %v", err)
	}
	return nil
}
