package testdriver

import (
	"strings"
	"sync"
)

// store holds option values in three layers the way Vim resolves them: a
// global layer plus per-buffer and per-window local layers. An option that
// has never been touched resolves to nil, which the client coerces to the
// option type's zero value.
type store struct {
	mu       sync.Mutex
	global   map[string]interface{}
	bufLocal map[int]map[string]interface{}
	winLocal map[int]map[string]interface{}
}

func newStore() *store {
	return &store{
		global:   make(map[string]interface{}),
		bufLocal: make(map[int]map[string]interface{}),
		winLocal: make(map[int]map[string]interface{}),
	}
}

// getOption resolves an option expression body, e.g. "g:tabstop" for
// &g:tabstop or "tabstop" for the effective &tabstop.
func (s *store) getOption(name string) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case strings.HasPrefix(name, "g:"):
		return s.global[name[2:]]
	case strings.HasPrefix(name, "l:"):
		name = name[2:]
		if v, ok := s.bufLocal[curBuf][name]; ok {
			return v
		}
		return s.winLocal[curWin][name]
	default:
		if v, ok := s.bufLocal[curBuf][name]; ok {
			return v
		}
		if v, ok := s.winLocal[curWin][name]; ok {
			return v
		}
		return s.global[name]
	}
}

// setOption assigns an option expression body. Effective assignment writes
// the global and the current-buffer local layer, as :let &opt does.
func (s *store) setOption(name string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case strings.HasPrefix(name, "g:"):
		s.global[name[2:]] = value
	case strings.HasPrefix(name, "l:"):
		name = name[2:]
		s.layer(s.bufLocal, curBuf)[name] = value
		s.layer(s.winLocal, curWin)[name] = value
	default:
		s.global[name] = value
		s.layer(s.bufLocal, curBuf)[name] = value
	}
}

func (s *store) reset(cmd, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch cmd {
	case "set":
		delete(s.global, name)
		delete(s.bufLocal[curBuf], name)
		delete(s.winLocal[curWin], name)
	case "setglobal":
		delete(s.global, name)
	case "setlocal":
		delete(s.bufLocal[curBuf], name)
		delete(s.winLocal[curWin], name)
	}
}

func (s *store) getBufLocal(buf int, name string) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.bufLocal[buf][name]; ok {
		return v
	}
	return s.global[name]
}

func (s *store) setBufLocal(buf int, name string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layer(s.bufLocal, buf)[name] = value
}

func (s *store) getWinLocal(win int, name string) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.winLocal[win][name]; ok {
		return v
	}
	return s.global[name]
}

func (s *store) setWinLocal(win int, name string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layer(s.winLocal, win)[name] = value
}

func (s *store) layer(m map[int]map[string]interface{}, id int) map[string]interface{} {
	l, ok := m[id]
	if !ok {
		l = make(map[string]interface{})
		m[id] = l
	}
	return l
}
