package action

import (
	"testing"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, typ := range []string{"exec", "uri", "print"} {
		if !Exists(typ) {
			t.Errorf("builtin action %q not registered", typ)
		}
		if _, err := Lookup(typ); err != nil {
			t.Errorf("Lookup(%q) failed: %v", typ, err)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("teleport"); err == nil {
		t.Error("expected error for unknown action type")
	}
	if Exists("teleport") {
		t.Error("Exists() should be false for unknown type")
	}
}

func TestTypesSorted(t *testing.T) {
	types := Types()
	if len(types) < 3 {
		t.Fatalf("expected at least 3 types, got %v", types)
	}
	for i := 1; i < len(types); i++ {
		if types[i-1] >= types[i] {
			t.Errorf("types not sorted: %v", types)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(printAction{})
}

func TestExecRejectsEmpty(t *testing.T) {
	a, err := Lookup("exec")
	if err != nil {
		t.Fatalf("Lookup(exec) failed: %v", err)
	}
	if err := a.Run(""); err == nil {
		t.Error("expected error for empty command")
	}
}
