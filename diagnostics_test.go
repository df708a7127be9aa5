package botblock

import (
	"reflect"
	"testing"
)

func TestValidationResultAddRoutesBySeverity(t *testing.T) {
	result := OK()
	if !result.Valid {
		t.Fatalf("expected OK result to start valid")
	}

	result.Add(Diagnostic{Code: DiagCodeInvalidEnum, Severity: SeverityWarning, Message: "warn"})
	if !result.Valid {
		t.Fatalf("warning must not flip Valid")
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(result.Warnings))
	}

	result.Add(Diagnostic{Code: DiagCodeInvalidURL, Severity: SeverityError, Message: "bad"})
	if result.Valid {
		t.Fatalf("error must flip Valid")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
}

func TestValidationResultMerge(t *testing.T) {
	a := OK()
	a.Add(Diagnostic{Code: DiagCodeTooLong, Severity: SeverityWarning, Message: "long"})

	b := OK()
	b.Add(Diagnostic{Code: DiagCodeMissingField, Severity: SeverityError, Message: "missing"})

	a.Merge(b)
	if a.Valid {
		t.Fatalf("merging an invalid result must invalidate the target")
	}
	if len(a.Errors) != 1 || len(a.Warnings) != 1 {
		t.Fatalf("expected 1 error and 1 warning, got %d/%d", len(a.Errors), len(a.Warnings))
	}
}

func TestSortDiagnosticsIsDeterministic(t *testing.T) {
	build := func() []Diagnostic {
		return []Diagnostic{
			{Code: DiagCodeInvalidURL, BlockID: "b2", Field: "url", Message: "z"},
			{Code: DiagCodeInvalidEnum, BlockID: "b1", Field: "size", Message: "a"},
			{Code: DiagCodeInvalidEnum, BlockID: "b1", Field: "align", Message: "b"},
			{Code: DiagCodeInvalidPattern, BlockID: "b1", Field: "align", Message: "a"},
		}
	}

	first := build()
	SortDiagnostics(first)
	second := build()
	SortDiagnostics(second)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must sort identically")
	}
	if first[0].BlockID != "b1" || first[0].Field != "align" {
		t.Fatalf("expected block then field ordering, got %+v", first[0])
	}
	if first[0].Code != DiagCodeInvalidEnum {
		t.Fatalf("equal block/field must order by code, got %s", first[0].Code)
	}
}

func TestSuggestionsCollectsErrorRepairHints(t *testing.T) {
	result := OK()
	result.Add(Diagnostic{Severity: SeverityError, Message: "a", Suggestion: "move the block"})
	result.Add(Diagnostic{Severity: SeverityError, Message: "b"})
	result.Add(Diagnostic{Severity: SeverityWarning, Message: "c", Suggestion: "ignored"})

	got := result.Suggestions()
	if len(got) != 1 || got[0] != "move the block" {
		t.Fatalf("expected only error suggestions, got %v", got)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Code: DiagCodeInvalidEnum, Severity: SeverityError, Message: "bad value", Field: "size"}
	if got := d.String(); got != `error [WIRE002_INVALID_ENUM] size: bad value` {
		t.Fatalf("unexpected rendering: %s", got)
	}
}
