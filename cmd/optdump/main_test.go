package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/govim/vimopt"
	"github.com/govim/vimopt/testdriver"
	"gopkg.in/tomb.v2"
)

func TestDump(t *testing.T) {
	h, err := testdriver.NewHost()
	if err != nil {
		t.Fatalf("failed to create test host: %v", err)
	}
	go h.Run()
	t.Cleanup(func() { h.Close() })

	conn, err := testdriver.Connect(h.Addr())
	if err != nil {
		t.Fatalf("failed to connect to %v: %v", h.Addr(), err)
	}
	t.Cleanup(func() { conn.Close() })

	var tb tomb.Tomb
	s, err := vimopt.NewSession(conn, conn, testWriter{t}, &tb)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	tb.Go(s.Run)
	<-s.Loaded()

	if err := vimopt.TabStop.Set(s, 8); err != nil {
		t.Fatalf("failed to set tabstop: %v", err)
	}

	var buf bytes.Buffer
	if err := dump(&buf, s); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if got, want := len(lines), len(vimopt.Registry()); got != want {
		t.Errorf("dump produced %v lines; want %v", got, want)
	}
	var sawTabStop bool
	for _, l := range lines {
		if l == "tabstop\tlocal\tnumber\t8" {
			sawTabStop = true
		}
	}
	if !sawTabStop {
		t.Errorf("dump output missing tabstop line:\n%s", buf.String())
	}
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Logf("%s", p)
	return len(p), nil
}
