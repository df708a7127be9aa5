package botblock

import (
	"fmt"
	"sort"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

const (
	DiagCodeUnsupportedContext = "BLK001_UNSUPPORTED_CONTEXT"
	DiagCodeContextNotAllowed  = "BLK002_CONTEXT_NOT_ALLOWED"
	DiagCodeMissingDependency  = "BLK003_MISSING_DEPENDENCY"
	DiagCodeMissingParent      = "BLK004_MISSING_PARENT"
	DiagCodeForbiddenSibling   = "BLK005_FORBIDDEN_SIBLING"
	DiagCodeTooManySiblings    = "BLK006_TOO_MANY_SIBLINGS"
	DiagCodeUnknownBlockType   = "BLK007_UNKNOWN_BLOCK_TYPE"
	DiagCodeInvalidProperty    = "WIRE001_INVALID_PROPERTY"
	DiagCodeInvalidEnum        = "WIRE002_INVALID_ENUM"
	DiagCodeInvalidPattern     = "WIRE003_INVALID_PATTERN"
	DiagCodeInvalidURL         = "WIRE004_INVALID_URL"
	DiagCodeOutOfRange         = "WIRE005_OUT_OF_RANGE"
	DiagCodeTooLong            = "WIRE006_TOO_LONG"
	DiagCodeTooManyItems       = "WIRE007_TOO_MANY_ITEMS"
	DiagCodePayloadTooLarge    = "WIRE008_PAYLOAD_TOO_LARGE"
	DiagCodeMissingField       = "WIRE009_MISSING_FIELD"
	DiagCodeInvalidRoot        = "WIRE010_INVALID_ROOT"
	DiagCodeGenerationFallback = "GEN001_FALLBACK"
)

// Diagnostic is a deterministic validation message for editor tooling.
// Suggestion, when present, tells the user how to repair the violation.
type Diagnostic struct {
	Code       string `json:"code"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Path       string `json:"path,omitempty"`
	BlockID    string `json:"block_id,omitempty"`
	Field      string `json:"field,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Field != "" {
		return fmt.Sprintf("%s [%s] %s: %s", d.Severity, d.Code, d.Field, d.Message)
	}
	return fmt.Sprintf("%s [%s] %s", d.Severity, d.Code, d.Message)
}

// ValidationResult aggregates diagnostics for one check or one whole
// pipeline run. Warnings never flip Valid; errors always do.
type ValidationResult struct {
	Valid    bool         `json:"valid"`
	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
}

// OK is the passing result.
func OK() ValidationResult {
	return ValidationResult{Valid: true}
}

// Add folds one diagnostic into the result, demoting or keeping Valid
// according to its severity.
func (r *ValidationResult) Add(d Diagnostic) {
	switch d.Severity {
	case SeverityWarning, SeverityInfo:
		r.Warnings = append(r.Warnings, d)
	default:
		r.Errors = append(r.Errors, d)
		r.Valid = false
	}
}

// Merge folds another result into this one.
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	if !other.Valid {
		r.Valid = false
	}
}

// Sort orders errors and warnings deterministically so identical inputs
// yield byte-identical reports.
func (r *ValidationResult) Sort() {
	SortDiagnostics(r.Errors)
	SortDiagnostics(r.Warnings)
}

// Suggestions lists every non-empty suggestion carried by the result's
// errors, in sorted-diagnostic order.
func (r ValidationResult) Suggestions() []string {
	var out []string
	for _, d := range r.Errors {
		if d.Suggestion != "" {
			out = append(out, d.Suggestion)
		}
	}
	return out
}

// SortDiagnostics sorts in place by path, block, field, code, severity,
// then message.
func SortDiagnostics(diags []Diagnostic) {
	sort.Slice(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.BlockID != b.BlockID {
			return a.BlockID < b.BlockID
		}
		if a.Field != b.Field {
			return a.Field < b.Field
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		if a.Severity != b.Severity {
			return a.Severity < b.Severity
		}
		return a.Message < b.Message
	})
}
