package vimopt_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/govim/vimopt"
)

// recordingSession is a Session that records every channel primitive invoked
// on it and answers with canned values.
type recordingSession struct {
	calls []call

	// exprResult and callResult are handed back verbatim from ChannelExpr and
	// ChannelCall
	exprResult json.RawMessage
	callResult json.RawMessage
}

type call struct {
	prim string
	fn   string
	args []interface{}
}

func (r *recordingSession) ChannelExpr(expr string) (json.RawMessage, error) {
	r.calls = append(r.calls, call{prim: "expr", fn: expr})
	return r.exprResult, nil
}

func (r *recordingSession) ChannelCall(fn string, args ...interface{}) (json.RawMessage, error) {
	r.calls = append(r.calls, call{prim: "call", fn: fn, args: args})
	return r.callResult, nil
}

func (r *recordingSession) ChannelEx(expr string) error {
	r.calls = append(r.calls, call{prim: "ex", fn: expr})
	return nil
}

func (r *recordingSession) Run() error                              { return nil }
func (r *recordingSession) Logf(format string, args ...interface{}) {}
func (r *recordingSession) Flavor() vimopt.Flavor                   { return vimopt.FlavorVim }
func (r *recordingSession) Version() string                         { return "v0.0.0" }
func (r *recordingSession) Loaded() chan struct{}                   { return nil }

func (r *recordingSession) lastCall(t *testing.T) call {
	t.Helper()
	if len(r.calls) == 0 {
		t.Fatalf("no channel primitive was invoked")
	}
	return r.calls[len(r.calls)-1]
}

func TestAccessorExprForms(t *testing.T) {
	testVals := []struct {
		acc  vimopt.OptionAccessor
		want string
	}{
		{acc: vimopt.Options, want: "&tabstop"},
		{acc: vimopt.GlobalOptions, want: "&g:tabstop"},
		{acc: vimopt.LocalOptions, want: "&l:tabstop"},
	}
	for _, v := range testVals {
		g := &recordingSession{}
		if _, err := v.acc.Get(g, "tabstop"); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		got := g.lastCall(t)
		if got.prim != "expr" || got.fn != v.want {
			t.Errorf("Get issued %v(%v); want expr(%v)", got.prim, got.fn, v.want)
		}
	}
}

func TestSetIssuesLetAssignment(t *testing.T) {
	testVals := []struct {
		name string
		do   func(g vimopt.Session) error
		want string
	}{
		{
			name: "number",
			do:   func(g vimopt.Session) error { return vimopt.TabStop.Set(g, 4) },
			want: "let &tabstop = 4",
		},
		{
			name: "boolean true",
			do:   func(g vimopt.Session) error { return vimopt.AutoWrite.Set(g, true) },
			want: "let &autowrite = 1",
		},
		{
			name: "boolean false",
			do:   func(g vimopt.Session) error { return vimopt.AutoWrite.SetGlobal(g, false) },
			want: "let &g:autowrite = 0",
		},
		{
			name: "string",
			do:   func(g vimopt.Session) error { return vimopt.Background.Set(g, "dark") },
			want: `let &background = "dark"`,
		},
		{
			name: "local string",
			do:   func(g vimopt.Session) error { return vimopt.FileType.SetLocal(g, "go") },
			want: `let &l:filetype = "go"`,
		},
	}
	for _, v := range testVals {
		t.Run(v.name, func(t *testing.T) {
			g := &recordingSession{}
			if err := v.do(g); err != nil {
				t.Fatalf("set failed: %v", err)
			}
			got := g.lastCall(t)
			want := call{prim: "call", fn: "execute", args: []interface{}{v.want}}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("set issued %+v; want %+v", got, want)
			}
		})
	}
}

func TestResetIssuesSetAmpersand(t *testing.T) {
	testVals := []struct {
		name string
		do   func(g vimopt.Session) error
		want string
	}{
		{
			name: "effective",
			do:   vimopt.AutoWrite.Reset,
			want: "set autowrite&",
		},
		{
			name: "global",
			do:   vimopt.AutoWrite.ResetGlobal,
			want: "setglobal autowrite&",
		},
		{
			name: "local",
			do:   vimopt.TabStop.ResetLocal,
			want: "setlocal tabstop&",
		},
	}
	for _, v := range testVals {
		t.Run(v.name, func(t *testing.T) {
			g := &recordingSession{}
			if err := v.do(g); err != nil {
				t.Fatalf("reset failed: %v", err)
			}
			got := g.lastCall(t)
			want := call{prim: "call", fn: "execute", args: []interface{}{v.want}}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("reset issued %+v; want %+v", got, want)
			}
		})
	}
}

func TestBufferAccessUsesAmpersandKey(t *testing.T) {
	g := &recordingSession{exprResult: nil, callResult: json.RawMessage(`8`)}

	n, err := vimopt.TabStop.GetBuffer(g, 3)
	if err != nil {
		t.Fatalf("TabStop.GetBuffer failed: %v", err)
	}
	if n != 8 {
		t.Errorf("TabStop.GetBuffer gave %v; want 8", n)
	}
	got := g.lastCall(t)
	want := call{prim: "call", fn: "getbufvar", args: []interface{}{3, "&tabstop"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetBuffer issued %+v; want %+v", got, want)
	}

	if err := vimopt.TabStop.SetBuffer(g, 3, 8); err != nil {
		t.Fatalf("TabStop.SetBuffer failed: %v", err)
	}
	got = g.lastCall(t)
	want = call{prim: "call", fn: "setbufvar", args: []interface{}{3, "&tabstop", 8}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SetBuffer issued %+v; want %+v", got, want)
	}
}

func TestWindowAccessUsesAmpersandKey(t *testing.T) {
	g := &recordingSession{callResult: json.RawMessage(`1`)}

	b, err := vimopt.Number.GetWindow(g, 1002)
	if err != nil {
		t.Fatalf("Number.GetWindow failed: %v", err)
	}
	if !b {
		t.Errorf("Number.GetWindow gave false; want true")
	}
	got := g.lastCall(t)
	want := call{prim: "call", fn: "getwinvar", args: []interface{}{1002, "&number"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetWindow issued %+v; want %+v", got, want)
	}

	// booleans cross the channel as numbers
	if err := vimopt.Number.SetWindow(g, 1002, true); err != nil {
		t.Fatalf("Number.SetWindow failed: %v", err)
	}
	got = g.lastCall(t)
	want = call{prim: "call", fn: "setwinvar", args: []interface{}{1002, "&number", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SetWindow issued %+v; want %+v", got, want)
	}
}

func TestCoercionDefaults(t *testing.T) {
	testVals := []struct {
		raw  json.RawMessage
		get  func(g vimopt.Session) (interface{}, error)
		want interface{}
	}{
		{
			raw:  json.RawMessage(`null`),
			get:  func(g vimopt.Session) (interface{}, error) { return vimopt.AutoWrite.Get(g) },
			want: false,
		},
		{
			raw:  json.RawMessage(`null`),
			get:  func(g vimopt.Session) (interface{}, error) { return vimopt.TabStop.Get(g) },
			want: 0,
		},
		{
			raw:  json.RawMessage(`null`),
			get:  func(g vimopt.Session) (interface{}, error) { return vimopt.Background.Get(g) },
			want: "",
		},
		{
			raw:  json.RawMessage(`1`),
			get:  func(g vimopt.Session) (interface{}, error) { return vimopt.AutoWrite.Get(g) },
			want: true,
		},
		{
			raw:  json.RawMessage(`true`),
			get:  func(g vimopt.Session) (interface{}, error) { return vimopt.AutoWrite.Get(g) },
			want: true,
		},
		{
			raw:  json.RawMessage(`"light"`),
			get:  func(g vimopt.Session) (interface{}, error) { return vimopt.Background.Get(g) },
			want: "light",
		},
	}
	for i, v := range testVals {
		t.Run(fmt.Sprintf("%d_%s", i, v.raw), func(t *testing.T) {
			g := &recordingSession{exprResult: v.raw}
			got, err := v.get(g)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if got != v.want {
				t.Errorf("get of %s gave %#v; want %#v", v.raw, got, v.want)
			}
		})
	}
}
