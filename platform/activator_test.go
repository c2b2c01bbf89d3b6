package platform

import "testing"

func TestActivatorSelection(t *testing.T) {
	if _, ok := Auto().Kind(); ok {
		t.Error("Expected Auto to carry no explicit kind")
	}

	kind, ok := Explicit(SingleOnEdge).Kind()
	if !ok || kind != SingleOnEdge {
		t.Errorf("Expected explicit single_on_edge, got %s (ok=%v)", kind, ok)
	}

	if Auto().String() != "auto" || Explicit(SingleOnEdge).String() != "single_on_edge" {
		t.Errorf("Unexpected selection names %q, %q", Auto(), Explicit(SingleOnEdge))
	}
}

func TestParseActivatorKind(t *testing.T) {
	kind, err := ParseActivatorKind(" Single_On_Edge ")
	if err != nil || kind != SingleOnEdge {
		t.Errorf("Expected single_on_edge, got %s (%v)", kind, err)
	}
	if _, err := ParseActivatorKind("ring"); err == nil {
		t.Error("Expected error for unknown activator kind")
	}
}
