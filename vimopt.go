// Package vimopt exposes every Vim option as a typed, named descriptor that
// reads and writes the option over a Vim8 channel-based session. Descriptors
// are flat values: calling a method issues exactly one call to the host
// editor and coerces the result to the option's declared type.
package vimopt

import (
	"encoding/json"
	"errors"
)

var (
	ErrShuttingDown = errors.New("vimopt shutting down")
)

type Flavor uint

const (
	FlavorVim Flavor = iota
	FlavorNeovim
)

func (f Flavor) String() string {
	switch f {
	case FlavorVim:
		return "vim"
	case FlavorNeovim:
		return "neovim"
	}
	return "unknown"
}

// Session is the connection to the host editor over which all option access
// happens. The channel implementation is returned by NewSession, the Neovim
// implementation by NewNeoSession.
type Session interface {
	// ChannelExpr evaluates and returns the result of expr in the editor
	ChannelExpr(expr string) (json.RawMessage, error)

	// ChannelCall evaluates and returns the result of calling fn with args in
	// the editor
	ChannelCall(fn string, args ...interface{}) (json.RawMessage, error)

	// ChannelEx executes an ex command in the editor
	ChannelEx(expr string) error

	// Run runs the session against the editor; it blocks until the session
	// shuts down
	Run() error

	// Logf logs a formatted message to the logger
	Logf(format string, args ...interface{})

	// Flavor returns the flavor of the editor to which the session is
	// connected
	Flavor() Flavor

	// Version returns the semver version of the editor to which the session
	// is connected
	Version() string

	// Loaded returns a channel that can be used to wait until the session has
	// finished its load handshake with the editor
	Loaded() chan struct{}
}
