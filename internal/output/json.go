package output

import (
	"github.com/lgbarn/termchess-go/internal/processing"
)

// JSONReport is the JSON form of a processing.Report.
type JSONReport struct {
	Line          int    `json:"line,omitempty"`
	Position      string `json:"position"`
	ToMove        string `json:"toMove"`
	Outcome       string `json:"outcome"`
	InCheck       bool   `json:"inCheck"`
	LegalMoves    int    `json:"legalMoves"`
	WhiteMaterial int    `json:"whiteMaterial"`
	BlackMaterial int    `json:"blackMaterial"`
	DuplicateOf   int    `json:"duplicateOf,omitempty"`
	Error         string `json:"error,omitempty"`
}

// JSONOutput holds a batch of reports.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(r *processing.Report) *JSONReport {
	jr := &JSONReport{
		Line:     r.Line,
		Position: r.Position,
		ToMove:   colourName(r.Side),
		Outcome:  r.Outcome(),
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
		return jr
	}
	jr.InCheck = r.InCheck
	jr.LegalMoves = r.LegalMoves
	jr.WhiteMaterial = r.WhiteMaterial
	jr.BlackMaterial = r.BlackMaterial
	jr.DuplicateOf = r.DuplicateOf
	return jr
}
