package utils

import (
	"strings"
	"testing"
)

func TestToDBName(t *testing.T) {
	cases := map[string]string{
		"Person":    "person",
		"OrderItem": "order_item",
		"ID":        "i_d",
		"name":      "name",
		"":          "",
	}
	for input, want := range cases {
		if got := ToDBName(input); got != want {
			t.Errorf("ToDBName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestToFieldName(t *testing.T) {
	cases := map[string]string{
		"person":     "Person",
		"order_item": "OrderItem",
		"name":       "Name",
	}
	for input, want := range cases {
		if got := ToFieldName(input); got != want {
			t.Errorf("ToFieldName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFileWithLineNum(t *testing.T) {
	file := FileWithLineNum()
	if !strings.Contains(file, "utils_test.go") {
		t.Errorf("FileWithLineNum() = %q, want the calling test file", file)
	}
}

func TestCallerFrame(t *testing.T) {
	frame := CallerFrame()
	if !strings.Contains(frame.File, "utils_test.go") {
		t.Errorf("CallerFrame().File = %q, want the calling test file", frame.File)
	}
	if frame.PC == 0 {
		t.Error("CallerFrame().PC = 0, want a resolvable program counter")
	}
}
