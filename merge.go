package goweft

import (
	"fmt"
	"strings"
)

// DefaultPendingMarkers are cell prefixes that identify an unresolved
// translation formula left behind by upstream tooling. Such a cell is
// not real content and is always overwritten.
var DefaultPendingMarkers = []string{"=GOOGLETRANSLATE("}

// RowPlan carries the per-row extraction outcome into the merge step.
type RowPlan struct {
	Row        int
	Template   string
	SegmentIDs []string
	// Verbatim marks rows whose source value is copy-eligible when no
	// segments were extracted (e.g. a URL-typed field).
	Verbatim bool
}

// LangTarget names one target language column and its overwrite policy.
// Column is the existing column index in the matrix, or negative when
// the column does not exist yet and must be created.
type LangTarget struct {
	Lang   string
	Column int
	Policy OverwritePolicy
}

// MergeRequest is the full input to Merge. The matrix is never mutated;
// Merge works on a clone.
type MergeRequest struct {
	Matrix       [][]string
	SourceColumn int
	Rows         []RowPlan
	// Translations maps language → segment id → translated text.
	Translations map[string]map[string]string
	Targets      []LangTarget
	// PendingMarkers overrides DefaultPendingMarkers when non-nil.
	PendingMarkers []string
}

// AuditEntry records one merge decision for later review.
type AuditEntry struct {
	Row    int
	Lang   string
	Action string // "write" or "skip"
	Reason string
}

// MergeResult is the rebuilt document plus its audit trail.
type MergeResult struct {
	Matrix   [][]string
	Audit    []AuditEntry
	Warnings []string
}

// Merge recombines per-language translations into a clone of the
// original matrix under each language's overwrite policy. Calling it
// twice with identical inputs produces byte-identical output.
func Merge(req MergeRequest) MergeResult {
	matrix := cloneMatrix(req.Matrix)
	result := MergeResult{}

	markers := req.PendingMarkers
	if markers == nil {
		markers = DefaultPendingMarkers
	}

	width := matrixWidth(matrix)

	for _, target := range req.Targets {
		col := target.Column
		isNew := col < 0
		if isNew {
			col = width
			width++
		}
		growRows(matrix, col)

		trans := req.Translations[target.Lang]

		for _, plan := range req.Rows {
			if plan.Row < 0 || plan.Row >= len(matrix) {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("row %d out of range for language %s", plan.Row, target.Lang))
				continue
			}
			source := cell(matrix, plan.Row, req.SourceColumn)
			current := matrix[plan.Row][col]
			pending := isPending(current, markers)

			if len(plan.SegmentIDs) == 0 {
				d := copyDecision(decisionInput{
					Verbatim:    plan.Verbatim,
					ExistingCol: !isNew,
					Policy:      target.Policy,
					TargetEmpty: isBlank(current) || pending,
					HasSource:   !isBlank(source),
				})
				if d.copy {
					matrix[plan.Row][col] = source
				}
				result.Audit = append(result.Audit, AuditEntry{
					Row:    plan.Row,
					Lang:   target.Lang,
					Action: action(d.copy),
					Reason: d.reason,
				})
				continue
			}

			rebuilt := rebuildRow(plan, target.Lang, trans, &result.Warnings)

			write, reason := writeDecision(target.Policy, isNew, isBlank(current), pending)
			if write {
				matrix[plan.Row][col] = rebuilt
			}
			result.Audit = append(result.Audit, AuditEntry{
				Row:    plan.Row,
				Lang:   target.Lang,
				Action: action(write),
				Reason: reason,
			})
		}
	}

	result.Matrix = matrix
	return result
}

// rebuildRow substitutes every placeholder in the row template with its
// translation. A segment id with no translation is a data-integrity
// violation: the placeholder becomes the empty string and a warning is
// recorded, but the rebuild never fails.
func rebuildRow(plan RowPlan, lang string, trans map[string]string, warnings *[]string) string {
	out := plan.Template
	for _, id := range plan.SegmentIDs {
		text, ok := trans[id]
		if !ok {
			*warnings = append(*warnings,
				fmt.Sprintf("row %d: no %s translation for segment %s", plan.Row, lang, id))
		}
		out = strings.ReplaceAll(out, Placeholder(id), text)
	}
	return out
}

// decisionInput is the explicit decision table input for rows without
// extractable segments.
type decisionInput struct {
	Verbatim    bool
	ExistingCol bool
	Policy      OverwritePolicy
	TargetEmpty bool
	HasSource   bool
}

type decision struct {
	copy   bool
	reason string
}

// copyDecision is the decision table for no-segment rows. Verbatim
// rows with source content copy unconditionally; everything else
// follows the overwrite policy, with PolicyKeep filling blank cells
// exactly once when the column is brand new.
func copyDecision(in decisionInput) decision {
	if in.Verbatim && in.HasSource {
		return decision{copy: true, reason: "verbatim"}
	}
	if !in.HasSource {
		return decision{reason: "no-source"}
	}
	switch in.Policy {
	case PolicyFillEmpty:
		if in.TargetEmpty {
			return decision{copy: true, reason: "fill-empty"}
		}
		return decision{reason: "target-occupied"}
	case PolicyOverwriteAll:
		return decision{copy: true, reason: "overwrite-all"}
	default: // PolicyKeep
		if !in.ExistingCol && in.TargetEmpty {
			return decision{copy: true, reason: "new-column-fill"}
		}
		return decision{reason: "keep-policy"}
	}
}

// writeDecision governs rows that do have segments. Pending-formula
// cells are never real content and are always overwritten.
func writeDecision(policy OverwritePolicy, isNew, targetEmpty, pending bool) (bool, string) {
	if pending {
		return true, "pending-formula"
	}
	if isNew || targetEmpty {
		return true, "filled"
	}
	switch policy {
	case PolicyOverwriteAll:
		return true, "overwrite-all"
	case PolicyFillEmpty:
		return false, "target-occupied"
	default:
		return false, "keep-policy"
	}
}

func action(write bool) string {
	if write {
		return "write"
	}
	return "skip"
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isPending(s string, markers []string) bool {
	trimmed := strings.TrimSpace(s)
	for _, m := range markers {
		if m != "" && strings.HasPrefix(trimmed, m) {
			return true
		}
	}
	return false
}

func cell(matrix [][]string, row, col int) string {
	if row < 0 || row >= len(matrix) {
		return ""
	}
	if col < 0 || col >= len(matrix[row]) {
		return ""
	}
	return matrix[row][col]
}

func cloneMatrix(matrix [][]string) [][]string {
	out := make([][]string, len(matrix))
	for i, row := range matrix {
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}
	return out
}

func matrixWidth(matrix [][]string) int {
	width := 0
	for _, row := range matrix {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// growRows extends every row so column col exists.
func growRows(matrix [][]string, col int) {
	for i, row := range matrix {
		for len(row) <= col {
			row = append(row, "")
		}
		matrix[i] = row
	}
}
