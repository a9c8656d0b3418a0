package vimopt_test

import (
	"io"
	"testing"

	"github.com/govim/vimopt"
	"github.com/govim/vimopt/testdriver"
	"gopkg.in/tomb.v2"
)

// newTestSession connects a channel session to an in-memory fake Vim host
func newTestSession(t *testing.T) vimopt.Session {
	t.Helper()
	h, err := testdriver.NewHost()
	if err != nil {
		t.Fatalf("failed to create test host: %v", err)
	}
	go h.Run()
	t.Cleanup(func() { h.Close() })

	conn, err := testdriver.Connect(h.Addr())
	if err != nil {
		t.Fatalf("failed to connect to test host: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	var tb tomb.Tomb
	g, err := vimopt.NewSession(conn, conn, io.Discard, &tb)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	tb.Go(g.Run)
	t.Cleanup(func() { tb.Kill(nil) })
	return g
}

func TestLoadHandshake(t *testing.T) {
	g := newTestSession(t)
	<-g.Loaded()
	if got, want := g.Version(), "v8.2.3456"; got != want {
		t.Errorf("Version() gave %q; want %q", got, want)
	}
	if got, want := g.Flavor(), vimopt.FlavorVim; got != want {
		t.Errorf("Flavor() gave %v; want %v", got, want)
	}
}

func TestGetDefaultsToZeroValue(t *testing.T) {
	g := newTestSession(t)

	b, err := vimopt.AutoWrite.Get(g)
	if err != nil {
		t.Fatalf("AutoWrite.Get failed: %v", err)
	}
	if b {
		t.Errorf("AutoWrite.Get on a fresh host gave true; want false")
	}

	n, err := vimopt.TabStop.Get(g)
	if err != nil {
		t.Fatalf("TabStop.Get failed: %v", err)
	}
	if n != 0 {
		t.Errorf("TabStop.Get on a fresh host gave %v; want 0", n)
	}

	s, err := vimopt.Background.Get(g)
	if err != nil {
		t.Fatalf("Background.Get failed: %v", err)
	}
	if s != "" {
		t.Errorf("Background.Get on a fresh host gave %q; want \"\"", s)
	}
}

func TestGlobalRoundTrip(t *testing.T) {
	g := newTestSession(t)

	if err := vimopt.AutoWrite.SetGlobal(g, true); err != nil {
		t.Fatalf("AutoWrite.SetGlobal failed: %v", err)
	}
	b, err := vimopt.AutoWrite.GetGlobal(g)
	if err != nil {
		t.Fatalf("AutoWrite.GetGlobal failed: %v", err)
	}
	if !b {
		t.Errorf("AutoWrite.GetGlobal gave false; want true")
	}

	if err := vimopt.AutoWrite.ResetGlobal(g); err != nil {
		t.Fatalf("AutoWrite.ResetGlobal failed: %v", err)
	}
	b, err = vimopt.AutoWrite.GetGlobal(g)
	if err != nil {
		t.Fatalf("AutoWrite.GetGlobal failed: %v", err)
	}
	if b {
		t.Errorf("AutoWrite.GetGlobal after reset gave true; want false")
	}
}

func TestEffectiveRoundTrip(t *testing.T) {
	g := newTestSession(t)

	if err := vimopt.TabStop.Set(g, 4); err != nil {
		t.Fatalf("TabStop.Set failed: %v", err)
	}
	n, err := vimopt.TabStop.Get(g)
	if err != nil {
		t.Fatalf("TabStop.Get failed: %v", err)
	}
	if n != 4 {
		t.Errorf("TabStop.Get gave %v; want 4", n)
	}

	if err := vimopt.TabStop.Reset(g); err != nil {
		t.Fatalf("TabStop.Reset failed: %v", err)
	}
	n, err = vimopt.TabStop.Get(g)
	if err != nil {
		t.Fatalf("TabStop.Get failed: %v", err)
	}
	if n != 0 {
		t.Errorf("TabStop.Get after reset gave %v; want 0", n)
	}
}

func TestStringRoundTrip(t *testing.T) {
	g := newTestSession(t)

	const want = "/usr/include,,"
	if err := vimopt.Path.SetGlobal(g, want); err != nil {
		t.Fatalf("Path.SetGlobal failed: %v", err)
	}
	s, err := vimopt.Path.GetGlobal(g)
	if err != nil {
		t.Fatalf("Path.GetGlobal failed: %v", err)
	}
	if s != want {
		t.Errorf("Path.GetGlobal gave %q; want %q", s, want)
	}
}

func TestLocalRoundTrip(t *testing.T) {
	g := newTestSession(t)

	if err := vimopt.ShiftWidth.SetLocal(g, 3); err != nil {
		t.Fatalf("ShiftWidth.SetLocal failed: %v", err)
	}
	n, err := vimopt.ShiftWidth.GetLocal(g)
	if err != nil {
		t.Fatalf("ShiftWidth.GetLocal failed: %v", err)
	}
	if n != 3 {
		t.Errorf("ShiftWidth.GetLocal gave %v; want 3", n)
	}

	if err := vimopt.ShiftWidth.ResetLocal(g); err != nil {
		t.Fatalf("ShiftWidth.ResetLocal failed: %v", err)
	}
	n, err = vimopt.ShiftWidth.GetLocal(g)
	if err != nil {
		t.Fatalf("ShiftWidth.GetLocal failed: %v", err)
	}
	if n != 0 {
		t.Errorf("ShiftWidth.GetLocal after reset gave %v; want 0", n)
	}
}

func TestBufferRoundTrip(t *testing.T) {
	g := newTestSession(t)

	if err := vimopt.TabStop.SetBuffer(g, 7, 2); err != nil {
		t.Fatalf("TabStop.SetBuffer failed: %v", err)
	}
	n, err := vimopt.TabStop.GetBuffer(g, 7)
	if err != nil {
		t.Fatalf("TabStop.GetBuffer failed: %v", err)
	}
	if n != 2 {
		t.Errorf("TabStop.GetBuffer(7) gave %v; want 2", n)
	}

	// a buffer without a local value falls back to the global value
	n, err = vimopt.TabStop.GetBuffer(g, 8)
	if err != nil {
		t.Fatalf("TabStop.GetBuffer failed: %v", err)
	}
	if n != 0 {
		t.Errorf("TabStop.GetBuffer(8) gave %v; want 0", n)
	}
}

func TestWindowRoundTrip(t *testing.T) {
	g := newTestSession(t)

	if err := vimopt.Number.SetWindow(g, 1001, true); err != nil {
		t.Fatalf("Number.SetWindow failed: %v", err)
	}
	b, err := vimopt.Number.GetWindow(g, 1001)
	if err != nil {
		t.Fatalf("Number.GetWindow failed: %v", err)
	}
	if !b {
		t.Errorf("Number.GetWindow(1001) gave false; want true")
	}
	b, err = vimopt.Number.GetWindow(g, 1002)
	if err != nil {
		t.Fatalf("Number.GetWindow failed: %v", err)
	}
	if b {
		t.Errorf("Number.GetWindow(1002) gave true; want false")
	}
}

func TestGlobalOrLocalScopes(t *testing.T) {
	g := newTestSession(t)

	if err := vimopt.UndoLevels.SetGlobal(g, 500); err != nil {
		t.Fatalf("UndoLevels.SetGlobal failed: %v", err)
	}
	if err := vimopt.UndoLevels.SetLocal(g, 10); err != nil {
		t.Fatalf("UndoLevels.SetLocal failed: %v", err)
	}

	// the effective value is the local override
	n, err := vimopt.UndoLevels.Get(g)
	if err != nil {
		t.Fatalf("UndoLevels.Get failed: %v", err)
	}
	if n != 10 {
		t.Errorf("UndoLevels.Get gave %v; want 10", n)
	}
	n, err = vimopt.UndoLevels.GetGlobal(g)
	if err != nil {
		t.Fatalf("UndoLevels.GetGlobal failed: %v", err)
	}
	if n != 500 {
		t.Errorf("UndoLevels.GetGlobal gave %v; want 500", n)
	}

	// dropping the local override exposes the global value again
	if err := vimopt.UndoLevels.ResetLocal(g); err != nil {
		t.Fatalf("UndoLevels.ResetLocal failed: %v", err)
	}
	n, err = vimopt.UndoLevels.Get(g)
	if err != nil {
		t.Fatalf("UndoLevels.Get failed: %v", err)
	}
	if n != 500 {
		t.Errorf("UndoLevels.Get after ResetLocal gave %v; want 500", n)
	}
}

func TestExprErrorPassthrough(t *testing.T) {
	g := newTestSession(t)

	if _, err := g.ChannelExpr("1+1"); err == nil {
		t.Errorf("ChannelExpr on an expression the host rejects gave nil error")
	}
}
