// Package testdriver is a support package for testing code written against
// github.com/govim/vimopt without a real Vim. It serves the Vim channel
// protocol over TCP against an in-memory option store that honours the
// effective/global/local scope-resolution rules.
package testdriver

import (
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/retry.v1"
	"gopkg.in/tomb.v2"
)

// versionLong is the v:versionlong reported by the fake host
const versionLong = 8023456

// loadVersionExpr must match the expression the channel session evaluates
// during its load handshake
const loadVersionExpr = `exists("v:versionlong")?v:versionlong:-1`

const (
	// curBuf and curWin are the buffer and window the fake host considers
	// current; "&l:" addressing resolves against them
	curBuf = 1
	curWin = 1000
)

// Host is a fake Vim listening for channel connections.
type Host struct {
	lis   net.Listener
	store *store
	tomb  tomb.Tomb
}

// NewHost creates a Host listening on a local TCP port. Run must be called
// for connections to be served.
func NewHost() (*Host, error) {
	lis, err := net.Listen("tcp4", "localhost:0")
	if err != nil {
		return nil, fmt.Errorf("failed to create listener for testdriver: %v", err)
	}
	return &Host{
		lis:   lis,
		store: newStore(),
	}, nil
}

// Addr returns the address the host is listening on.
func (h *Host) Addr() string {
	return h.lis.Addr().String()
}

// Run accepts and serves channel connections until Close is called.
func (h *Host) Run() error {
	var g errgroup.Group
	for {
		conn, err := h.lis.Accept()
		if err != nil {
			select {
			case <-h.tomb.Dying():
				return g.Wait()
			default:
				return err
			}
		}
		g.Go(func() error {
			h.serve(conn)
			return nil
		})
	}
}

// Close stops the host and unblocks Run.
func (h *Host) Close() error {
	h.tomb.Kill(nil)
	return h.lis.Close()
}

// Connect dials the host at addr, retrying with backoff until the listener
// is serving.
func Connect(addr string) (net.Conn, error) {
	strategy := retry.LimitTime(5*time.Second, retry.Exponential{
		Initial: 10 * time.Millisecond,
		Factor:  1.5,
	})
	var lastErr error
	for a := retry.Start(strategy, nil); a.Next(); {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to connect to testdriver host %v: %v", addr, lastErr)
}

// serve speaks the channel protocol on conn: requests are ["expr", expr, id],
// ["call", fn, args, id] or ["ex", cmd]; responses are [id, value]. A failed
// evaluation responds with the string "ERROR", as Vim does.
func (h *Host) serve(conn net.Conn) {
	defer conn.Close()
	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)
	for {
		var msg []json.RawMessage
		if err := dec.Decode(&msg); err != nil {
			return
		}
		if len(msg) == 0 {
			continue
		}
		var cmd string
		if err := json.Unmarshal(msg[0], &cmd); err != nil {
			continue
		}
		var res interface{}
		var ok bool
		var idRaw json.RawMessage
		switch cmd {
		case "expr":
			if len(msg) < 2 {
				continue
			}
			var expr string
			if err := json.Unmarshal(msg[1], &expr); err != nil {
				continue
			}
			res, ok = h.eval(expr)
			if len(msg) > 2 {
				idRaw = msg[2]
			}
		case "call":
			if len(msg) < 3 {
				continue
			}
			var fn string
			if err := json.Unmarshal(msg[1], &fn); err != nil {
				continue
			}
			var args []interface{}
			if err := json.Unmarshal(msg[2], &args); err != nil {
				continue
			}
			res, ok = h.call(fn, args)
			if len(msg) > 3 {
				idRaw = msg[3]
			}
		case "ex":
			var excmd string
			if len(msg) > 1 {
				json.Unmarshal(msg[1], &excmd)
				h.ex(excmd)
			}
			continue
		case "redraw":
			continue
		default:
			continue
		}
		if idRaw == nil {
			continue
		}
		var id int
		if err := json.Unmarshal(idRaw, &id); err != nil {
			continue
		}
		if !ok {
			res = "ERROR"
		}
		if err := enc.Encode([2]interface{}{id, res}); err != nil {
			return
		}
	}
}

func (h *Host) eval(expr string) (interface{}, bool) {
	if expr == loadVersionExpr {
		return versionLong, true
	}
	if strings.HasPrefix(expr, "&") {
		return h.store.getOption(expr[1:]), true
	}
	return nil, false
}

func (h *Host) call(fn string, args []interface{}) (interface{}, bool) {
	switch fn {
	case "execute":
		if len(args) < 1 {
			return nil, false
		}
		cmd, ok := args[0].(string)
		if !ok {
			return nil, false
		}
		if !h.ex(cmd) {
			return nil, false
		}
		return "", true
	case "getbufvar":
		buf, key, ok := varArgs(args)
		if !ok || !strings.HasPrefix(key, "&") {
			return nil, false
		}
		return h.store.getBufLocal(buf, key[1:]), true
	case "setbufvar":
		buf, key, ok := varArgs(args)
		if !ok || !strings.HasPrefix(key, "&") || len(args) < 3 {
			return nil, false
		}
		h.store.setBufLocal(buf, key[1:], args[2])
		return 0, true
	case "getwinvar":
		win, key, ok := varArgs(args)
		if !ok || !strings.HasPrefix(key, "&") {
			return nil, false
		}
		return h.store.getWinLocal(win, key[1:]), true
	case "setwinvar":
		win, key, ok := varArgs(args)
		if !ok || !strings.HasPrefix(key, "&") || len(args) < 3 {
			return nil, false
		}
		h.store.setWinLocal(win, key[1:], args[2])
		return 0, true
	}
	return nil, false
}

// varArgs extracts the (id, key) prefix common to the bufvar/winvar builtins.
// JSON numbers decode as float64.
func varArgs(args []interface{}) (int, string, bool) {
	if len(args) < 2 {
		return 0, "", false
	}
	id, ok := args[0].(float64)
	if !ok {
		return 0, "", false
	}
	key, ok := args[1].(string)
	if !ok {
		return 0, "", false
	}
	return int(id), key, true
}

// ex handles the subset of ex commands the option accessors issue: let
// assignments and set/setglobal/setlocal resets.
func (h *Host) ex(cmd string) bool {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "let":
		// let &{scope}{name} = {literal}
		rest := strings.TrimSpace(strings.TrimPrefix(cmd, "let"))
		eq := strings.Index(rest, "=")
		if eq < 0 {
			return false
		}
		lhs := strings.TrimSpace(rest[:eq])
		lit := strings.TrimSpace(rest[eq+1:])
		if !strings.HasPrefix(lhs, "&") {
			return false
		}
		var value interface{}
		if err := json.Unmarshal([]byte(lit), &value); err != nil {
			return false
		}
		h.store.setOption(lhs[1:], value)
		return true
	case "set", "setglobal", "setlocal":
		if len(fields) != 2 || !strings.HasSuffix(fields[1], "&") {
			return false
		}
		name := strings.TrimSuffix(fields[1], "&")
		h.store.reset(fields[0], name)
		return true
	}
	return false
}
