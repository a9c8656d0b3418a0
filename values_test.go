package vimopt

import (
	"reflect"
	"testing"
)

func TestParseSwitchBufModes(t *testing.T) {
	got, err := ParseSwitchBufModes("useopen,vsplit")
	if err != nil {
		t.Fatalf("ParseSwitchBufModes failed: %v", err)
	}
	want := []SwitchBufMode{SwitchBufUseOpen, SwitchBufVsplit}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSwitchBufModes gave %v; want %v", got, want)
	}

	if _, err := ParseSwitchBufModes("useopen,banana"); err == nil {
		t.Errorf("ParseSwitchBufModes accepted an invalid mode")
	}
}

func TestJoinSwitchBufModes(t *testing.T) {
	got := JoinSwitchBufModes([]SwitchBufMode{SwitchBufUseOpen, SwitchBufNewTab})
	if want := "useopen,newtab"; got != want {
		t.Errorf("JoinSwitchBufModes gave %q; want %q", got, want)
	}
}

func TestParseBackspaceItems(t *testing.T) {
	got, err := ParseBackspaceItems("indent,eol,start")
	if err != nil {
		t.Fatalf("ParseBackspaceItems failed: %v", err)
	}
	want := []BackspaceItem{BackspaceIndent, BackspaceEol, BackspaceStart}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseBackspaceItems gave %v; want %v", got, want)
	}

	// an empty value is valid for &backspace
	got, err = ParseBackspaceItems("")
	if err != nil {
		t.Fatalf("ParseBackspaceItems failed on empty value: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ParseBackspaceItems on empty value gave %v; want none", got)
	}

	if _, err := ParseBackspaceItems("2"); err == nil {
		t.Errorf("ParseBackspaceItems accepted an invalid item")
	}
}
