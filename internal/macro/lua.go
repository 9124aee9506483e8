package macro

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// script wraps a Lua state owning the user's expand(word) hook.
// gopher-lua states are not goroutine-safe; calls are serialized.
type script struct {
	mu sync.Mutex
	ls *lua.LState
}

// LoadScript loads a Lua script file defining expand(word). The
// function may return a string (the expansion) or nil to fall through
// to the table.
func (t *Table) LoadScript(path string) error {
	ls := lua.NewState()
	if err := ls.DoFile(path); err != nil {
		ls.Close()
		return fmt.Errorf("loading macro script %s: %w", path, err)
	}
	return t.setScript(ls)
}

// LoadScriptString loads Lua source directly; used by tests and
// embedded configurations.
func (t *Table) LoadScriptString(source string) error {
	ls := lua.NewState()
	if err := ls.DoString(source); err != nil {
		ls.Close()
		return fmt.Errorf("loading macro script: %w", err)
	}
	return t.setScript(ls)
}

func (t *Table) setScript(ls *lua.LState) error {
	if fn := ls.GetGlobal("expand"); fn.Type() != lua.LTFunction {
		ls.Close()
		return fmt.Errorf("macro script does not define expand(word)")
	}
	if t.script != nil {
		t.script.close()
	}
	t.script = &script{ls: ls}
	return nil
}

// expand calls the Lua hook. Script errors and non-string results
// degrade to a table lookup.
func (s *script) expand(word string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn := s.ls.GetGlobal("expand")
	if fn.Type() != lua.LTFunction {
		return "", false
	}
	err := s.ls.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(word))
	if err != nil {
		return "", false
	}
	ret := s.ls.Get(-1)
	s.ls.Pop(1)
	if text, ok := ret.(lua.LString); ok && string(text) != "" {
		return string(text), true
	}
	return "", false
}

func (s *script) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ls.Close()
}
