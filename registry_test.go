package vimopt_test

import (
	"testing"

	"github.com/govim/vimopt"
)

func TestRegistryConsistency(t *testing.T) {
	reg := vimopt.Registry()
	if len(reg) < 300 {
		t.Fatalf("registry holds %v options; want at least 300", len(reg))
	}
	seen := make(map[string]bool)
	for _, o := range reg {
		if o.Name == "" {
			t.Errorf("registry entry with empty name: %+v", o)
		}
		if seen[o.Name] {
			t.Errorf("duplicate registry entry for %v", o.Name)
		}
		seen[o.Name] = true
		switch o.Scope {
		case vimopt.ScopeGlobal, vimopt.ScopeLocal, vimopt.ScopeGlobalOrLocal:
		default:
			t.Errorf("option %v has invalid scope %v", o.Name, o.Scope)
		}
		switch o.Kind {
		case vimopt.KindBool, vimopt.KindNumber, vimopt.KindString:
		default:
			t.Errorf("option %v has invalid kind %v", o.Name, o.Kind)
		}
	}
}

func TestRegistrySpotChecks(t *testing.T) {
	reg := make(map[string]vimopt.OptionInfo)
	for _, o := range vimopt.Registry() {
		reg[o.Name] = o
	}
	testVals := []struct {
		name  string
		scope vimopt.Scope
		kind  vimopt.ValueKind
	}{
		{name: "autowrite", scope: vimopt.ScopeGlobal, kind: vimopt.KindBool},
		{name: "tabstop", scope: vimopt.ScopeLocal, kind: vimopt.KindNumber},
		{name: "background", scope: vimopt.ScopeGlobal, kind: vimopt.KindString},
		{name: "path", scope: vimopt.ScopeGlobalOrLocal, kind: vimopt.KindString},
		{name: "undolevels", scope: vimopt.ScopeGlobalOrLocal, kind: vimopt.KindNumber},
		{name: "number", scope: vimopt.ScopeLocal, kind: vimopt.KindBool},
	}
	for _, v := range testVals {
		o, ok := reg[v.name]
		if !ok {
			t.Errorf("option %v is not registered", v.name)
			continue
		}
		if o.Scope != v.scope || o.Kind != v.kind {
			t.Errorf("option %v registered as (%v, %v); want (%v, %v)",
				v.name, o.Scope, o.Kind, v.scope, v.kind)
		}
	}
}

func TestRegistryIsACopy(t *testing.T) {
	a := vimopt.Registry()
	if len(a) == 0 {
		t.Fatal("empty registry")
	}
	a[0].Name = "clobbered"
	b := vimopt.Registry()
	if b[0].Name == "clobbered" {
		t.Errorf("mutating the returned registry slice affected the package registry")
	}
}

func TestDescriptorNames(t *testing.T) {
	testVals := []struct {
		got  string
		want string
	}{
		{got: vimopt.TabStop.Name(), want: "tabstop"},
		{got: vimopt.AutoWrite.Name(), want: "autowrite"},
		{got: vimopt.UndoLevels.Name(), want: "undolevels"},
	}
	for _, v := range testVals {
		if v.got != v.want {
			t.Errorf("Name() gave %q; want %q", v.got, v.want)
		}
	}
}
