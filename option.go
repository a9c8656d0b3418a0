package vimopt

//go:generate go run github.com/govim/vimopt/internal/cmd/genoptions

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is the set of Go types an option value can take. Vim boolean options
// are numbers on the wire; coercion maps them onto bool.
type Value interface {
	bool | int | string
}

type ValueKind uint

const (
	KindBool ValueKind = iota
	KindNumber
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}
	return "unknown"
}

type Scope uint

const (
	ScopeGlobal Scope = iota
	ScopeLocal
	ScopeGlobalOrLocal
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeLocal:
		return "local"
	case ScopeGlobalOrLocal:
		return "global-local"
	}
	return "unknown"
}

// OptionInfo describes one registered option descriptor.
type OptionInfo struct {
	Name  string
	Scope Scope
	Kind  ValueKind
}

// registry records every descriptor constructed at package load. It is only
// appended to from the generated table's var initialisers, so needs no lock.
var registry []OptionInfo

// Registry returns a copy of the descriptor table: one entry per exported
// option, in declaration order.
func Registry() []OptionInfo {
	return append([]OptionInfo{}, registry...)
}

func register[T Value](name string, scope Scope) {
	registry = append(registry, OptionInfo{
		Name:  name,
		Scope: scope,
		Kind:  kindOf[T](),
	})
}

func kindOf[T Value]() ValueKind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int:
		return KindNumber
	default:
		return KindString
	}
}

var jsonNull = []byte("null")

// coerce maps a raw channel value onto the option's declared type. A
// missing/null result coerces to the type's zero value rather than failing;
// the descriptor surface cannot distinguish "at host default" from a literal
// zero/false/empty value.
func coerce[T Value](m json.RawMessage) (T, error) {
	var zero T
	if len(m) == 0 || bytes.Equal(m, jsonNull) {
		return zero, nil
	}
	switch p := any(&zero).(type) {
	case *bool:
		// Vim booleans are 0/1 numbers; Neovim may also hand back true/false
		var n int
		if err := json.Unmarshal(m, &n); err == nil {
			*p = n != 0
			return zero, nil
		}
		var b bool
		if err := json.Unmarshal(m, &b); err != nil {
			return zero, fmt.Errorf("failed to coerce %s to boolean: %v", m, err)
		}
		*p = b
	case *int:
		if err := json.Unmarshal(m, p); err != nil {
			return zero, fmt.Errorf("failed to coerce %s to number: %v", m, err)
		}
	case *string:
		if err := json.Unmarshal(m, p); err != nil {
			return zero, fmt.Errorf("failed to coerce %s to string: %v", m, err)
		}
	}
	return zero, nil
}

// optionBase carries the methods present on every descriptor, addressing the
// effective value of the option.
type optionBase[T Value] struct {
	name string
}

// Name returns the Vim name of the option, e.g. "tabstop".
func (o optionBase[T]) Name() string {
	return o.name
}

// Get returns the effective value of the option.
func (o optionBase[T]) Get(g Session) (T, error) {
	raw, err := Options.Get(g, o.name)
	if err != nil {
		var zero T
		return zero, err
	}
	return coerce[T](raw)
}

// Set assigns value to the effective value of the option.
func (o optionBase[T]) Set(g Session, value T) error {
	return Options.Set(g, o.name, value)
}

// Reset restores the option to its host default.
func (o optionBase[T]) Reset(g Session) error {
	return Options.Remove(g, o.name)
}

// globalExt carries the methods present on descriptors whose scope includes
// the editor-wide value.
type globalExt[T Value] struct {
	name string
}

// GetGlobal returns the global value of the option.
func (o globalExt[T]) GetGlobal(g Session) (T, error) {
	raw, err := GlobalOptions.Get(g, o.name)
	if err != nil {
		var zero T
		return zero, err
	}
	return coerce[T](raw)
}

// SetGlobal assigns value to the global value of the option.
func (o globalExt[T]) SetGlobal(g Session, value T) error {
	return GlobalOptions.Set(g, o.name, value)
}

// ResetGlobal restores the global value of the option to its host default.
func (o globalExt[T]) ResetGlobal(g Session) error {
	return GlobalOptions.Remove(g, o.name)
}

// localExt carries the methods present on descriptors whose scope includes a
// per-buffer or per-window value.
type localExt[T Value] struct {
	name string
}

// GetLocal returns the value of the option local to the current buffer or
// window.
func (o localExt[T]) GetLocal(g Session) (T, error) {
	raw, err := LocalOptions.Get(g, o.name)
	if err != nil {
		var zero T
		return zero, err
	}
	return coerce[T](raw)
}

// SetLocal assigns value to the option local to the current buffer or window.
func (o localExt[T]) SetLocal(g Session, value T) error {
	return LocalOptions.Set(g, o.name, value)
}

// ResetLocal restores the local value of the option to its host default.
func (o localExt[T]) ResetLocal(g Session) error {
	return LocalOptions.Remove(g, o.name)
}

// GetBuffer returns the value of the option in buffer buf.
func (o localExt[T]) GetBuffer(g Session, buf int) (T, error) {
	raw, err := GetBufVar(g, buf, "&"+o.name)
	if err != nil {
		var zero T
		return zero, err
	}
	return coerce[T](raw)
}

// SetBuffer assigns value to the option in buffer buf.
func (o localExt[T]) SetBuffer(g Session, buf int, value T) error {
	return SetBufVar(g, buf, "&"+o.name, value)
}

// GetWindow returns the value of the option in window win.
func (o localExt[T]) GetWindow(g Session, win int) (T, error) {
	raw, err := GetWinVar(g, win, "&"+o.name)
	if err != nil {
		var zero T
		return zero, err
	}
	return coerce[T](raw)
}

// SetWindow assigns value to the option in window win.
func (o localExt[T]) SetWindow(g Session, win int, value T) error {
	return SetWinVar(g, win, "&"+o.name, value)
}

// GlobalOption is an option with a single editor-wide value.
type GlobalOption[T Value] struct {
	optionBase[T]
	globalExt[T]
}

// LocalOption is an option whose value may differ per buffer or per window.
type LocalOption[T Value] struct {
	optionBase[T]
	localExt[T]
}

// GlobalOrLocalOption is an option with a global value which a buffer or
// window local value may override.
type GlobalOrLocalOption[T Value] struct {
	optionBase[T]
	globalExt[T]
	localExt[T]
}

func newGlobalOption[T Value](name string) GlobalOption[T] {
	register[T](name, ScopeGlobal)
	return GlobalOption[T]{
		optionBase: optionBase[T]{name: name},
		globalExt:  globalExt[T]{name: name},
	}
}

func newLocalOption[T Value](name string) LocalOption[T] {
	register[T](name, ScopeLocal)
	return LocalOption[T]{
		optionBase: optionBase[T]{name: name},
		localExt:   localExt[T]{name: name},
	}
}

func newGlobalOrLocalOption[T Value](name string) GlobalOrLocalOption[T] {
	register[T](name, ScopeGlobalOrLocal)
	return GlobalOrLocalOption[T]{
		optionBase: optionBase[T]{name: name},
		globalExt:  globalExt[T]{name: name},
		localExt:   localExt[T]{name: name},
	}
}
