package ui

import (
	"strings"
	"testing"
)

func TestStatusMessages(t *testing.T) {
	if got := Success("done"); !strings.Contains(got, SymbolSuccess) || !strings.Contains(got, "done") {
		t.Errorf("Success = %q", got)
	}
	if got := Errorf("bad %s", "input"); !strings.Contains(got, SymbolError) || !strings.Contains(got, "bad input") {
		t.Errorf("Errorf = %q", got)
	}
	if got := Warningf("watch %d", 7); !strings.Contains(got, SymbolWarning) || !strings.Contains(got, "watch 7") {
		t.Errorf("Warningf = %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Title\n\nSome *body* text.", 80)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Title") {
		t.Errorf("heading missing from %q", out)
	}
	if strings.HasSuffix(out, "\n\n") {
		t.Errorf("trailing newlines not normalized: %q", out)
	}
}
