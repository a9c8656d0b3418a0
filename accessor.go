package vimopt

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// OptionAccessor reads, writes and resets options by name in one scope
// addressing mode. The three instances Options, GlobalOptions and
// LocalOptions are the primitives every option descriptor delegates to.
type OptionAccessor struct {
	// prefix is the option expression prefix, e.g. "&g:"
	prefix string
	// resetCmd is the ex command whose "&" form restores the default in this
	// scope, e.g. "setglobal"
	resetCmd string
}

var (
	// Options addresses the effective value of an option: the local value if
	// one is set, otherwise the global value.
	Options = OptionAccessor{prefix: "&", resetCmd: "set"}

	// GlobalOptions addresses the global value of an option.
	GlobalOptions = OptionAccessor{prefix: "&g:", resetCmd: "setglobal"}

	// LocalOptions addresses the value local to the current buffer or window.
	LocalOptions = OptionAccessor{prefix: "&l:", resetCmd: "setlocal"}
)

// Get returns the raw value of the named option in this scope.
func (a OptionAccessor) Get(g Session, name string) (json.RawMessage, error) {
	return g.ChannelExpr(a.prefix + name)
}

// Set assigns value to the named option in this scope. value must be a bool,
// an integer or a string.
func (a OptionAccessor) Set(g Session, name string, value interface{}) error {
	lit, err := vimLiteral(value)
	if err != nil {
		return fmt.Errorf("failed to set option %v: %v", name, err)
	}
	// execute() makes the assignment a single awaitable call, so that errors
	// such as an unknown option name surface to the caller
	_, err = g.ChannelCall("execute", "let "+a.prefix+name+" = "+lit)
	return err
}

// Remove restores the named option to its host default in this scope.
func (a OptionAccessor) Remove(g Session, name string) error {
	_, err := g.ChannelCall("execute", a.resetCmd+" "+name+"&")
	return err
}

// GetBufVar returns the raw value of the buffer-scoped variable name in
// buffer buf. Option values are addressed with the "&name" key form.
func GetBufVar(g Session, buf int, name string) (json.RawMessage, error) {
	return g.ChannelCall("getbufvar", buf, name)
}

// SetBufVar sets the buffer-scoped variable name in buffer buf to value.
func SetBufVar(g Session, buf int, name string, value interface{}) error {
	_, err := g.ChannelCall("setbufvar", buf, name, vimValue(value))
	return err
}

// GetWinVar returns the raw value of the window-scoped variable name in
// window win. Option values are addressed with the "&name" key form.
func GetWinVar(g Session, win int, name string) (json.RawMessage, error) {
	return g.ChannelCall("getwinvar", win, name)
}

// SetWinVar sets the window-scoped variable name in window win to value.
func SetWinVar(g Session, win int, name string, value interface{}) error {
	_, err := g.ChannelCall("setwinvar", win, name, vimValue(value))
	return err
}

// vimValue maps a Go option value to the value sent over the channel. Boolean
// options are numbers on the Vim side, so bools map to 0 and 1; older Vims
// reject v:true/v:false in option assignments.
func vimValue(value interface{}) interface{} {
	if b, ok := value.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return value
}

// vimLiteral renders value as a Vim expression literal for use in a let
// statement. JSON string escaping is valid in Vim double-quoted strings.
func vimLiteral(value interface{}) (string, error) {
	switch v := vimValue(value).(type) {
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case string:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unsupported option value type %T", value)
	}
}
