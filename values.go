package vimopt

import (
	"fmt"
	"strings"
)

// SwitchBufMode typed constants define the set of values that the Vim setting
// switchbuf can take. See :help switchbuf for more details and definitions of
// each value.
type SwitchBufMode string

const (
	SwitchBufUseOpen SwitchBufMode = "useopen"
	SwitchBufUseTag  SwitchBufMode = "usetab"
	SwitchBufSplit   SwitchBufMode = "split"
	SwitchBufVsplit  SwitchBufMode = "vsplit"
	SwitchBufNewTab  SwitchBufMode = "newtab"
)

// ParseSwitchBufModes assumes vs is a valid value for &switchbuf
func ParseSwitchBufModes(vs string) ([]SwitchBufMode, error) {
	var modes []SwitchBufMode
	for _, v := range strings.Split(vs, ",") {
		sm := SwitchBufMode(v)
		switch sm {
		case SwitchBufUseOpen, SwitchBufUseTag, SwitchBufSplit, SwitchBufVsplit, SwitchBufNewTab:
		default:
			return nil, fmt.Errorf("invalid SwitchBufMode %q", sm)
		}
		modes = append(modes, sm)
	}
	return modes, nil
}

// JoinSwitchBufModes renders modes as a value for SwitchBuf.Set
func JoinSwitchBufModes(modes []SwitchBufMode) string {
	vs := make([]string, len(modes))
	for i, m := range modes {
		vs[i] = string(m)
	}
	return strings.Join(vs, ",")
}

// BackspaceItem typed constants define the set of values that the Vim setting
// backspace can take. See :help backspace.
type BackspaceItem string

const (
	BackspaceIndent BackspaceItem = "indent"
	BackspaceEol    BackspaceItem = "eol"
	BackspaceStart  BackspaceItem = "start"
	BackspaceNoStop BackspaceItem = "nostop"
)

// ParseBackspaceItems assumes vs is a valid value for &backspace
func ParseBackspaceItems(vs string) ([]BackspaceItem, error) {
	var items []BackspaceItem
	if vs == "" {
		return items, nil
	}
	for _, v := range strings.Split(vs, ",") {
		bi := BackspaceItem(v)
		switch bi {
		case BackspaceIndent, BackspaceEol, BackspaceStart, BackspaceNoStop:
		default:
			return nil, fmt.Errorf("invalid BackspaceItem %q", bi)
		}
		items = append(items, bi)
	}
	return items, nil
}

// ClipboardItem typed constants define the commonly used values of the Vim
// setting clipboard. See :help clipboard.
type ClipboardItem string

const (
	ClipboardUnnamed     ClipboardItem = "unnamed"
	ClipboardUnnamedPlus ClipboardItem = "unnamedplus"
	ClipboardAutoSelect  ClipboardItem = "autoselect"
)
