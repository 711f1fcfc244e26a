package script

import (
	lua "github.com/yuin/gopher-lua"

	levent "github.com/ryder052/LEvent"
)

const connTypeName = "levent.connection"

// Engine runs Lua code against one registry. Scripts refer to events by
// name; the resolver maps names to the registry's identifier domain.
//
// Like the registry itself, an Engine assumes a single logical thread of
// control.
type Engine[ID levent.Enum] struct {
	state   *lua.LState
	reg     *levent.Registry[ID]
	resolve func(string) (ID, bool)
	conns   []*levent.Connection
}

// New creates an engine bound to reg. Unknown event names raise a Lua
// error in the calling script.
func New[ID levent.Enum](reg *levent.Registry[ID], resolve func(string) (ID, bool)) *Engine[ID] {
	L := lua.NewState()
	e := &Engine[ID]{state: L, reg: reg, resolve: resolve}

	mt := L.NewTypeMetatable(connTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"disconnect": connDisconnect,
		"live":       connLive,
	}))

	L.PreloadModule("levent", e.loadModule)
	return e
}

// DoFile runs a script file.
func (e *Engine[ID]) DoFile(path string) error {
	return e.state.DoFile(path)
}

// DoString runs inline script source.
func (e *Engine[ID]) DoString(source string) error {
	return e.state.DoString(source)
}

// Connections returns the number of script listener connections made so
// far, disconnected ones included.
func (e *Engine[ID]) Connections() int {
	return len(e.conns)
}

// Close disconnects every script listener and shuts the Lua state down.
func (e *Engine[ID]) Close() error {
	for _, conn := range e.conns {
		conn.Disconnect()
	}
	e.conns = nil
	e.state.Close()
	return nil
}

func (e *Engine[ID]) loadModule(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"declare": e.declareFn,
		"connect": e.connectFn,
		"trigger": e.triggerFn,
		"block":   e.blockFn,
	})
	L.Push(mod)
	return 1
}

func (e *Engine[ID]) lookupID(L *lua.LState, name string) ID {
	id, ok := e.resolve(name)
	if !ok {
		L.RaiseError("unknown event %q", name)
	}
	return id
}

// declare(name [, replace]) -> bool
func (e *Engine[ID]) declareFn(L *lua.LState) int {
	id := e.lookupID(L, L.CheckString(1))

	var opts []levent.DeclareOption
	if L.OptBool(2, false) {
		opts = append(opts, levent.Replace())
	}
	L.Push(lua.LBool(levent.Declare[any, any](e.reg, id, opts...)))
	return 1
}

// connect(name, fn [, priority]) -> connection, err
func (e *Engine[ID]) connectFn(L *lua.LState) int {
	id := e.lookupID(L, L.CheckString(1))
	fn := L.CheckFunction(2)
	prio := levent.Priority(L.OptInt(3, 0))

	del := levent.Callable(func(arg any) any {
		state := e.state
		if err := state.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, toLua(state, arg)); err != nil {
			return nil
		}
		ret := state.Get(-1)
		state.Pop(1)
		return toGo(ret)
	})

	conn := levent.Connect(e.reg, id, del, levent.WithPriority(prio))
	if err := conn.Err(); err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	e.conns = append(e.conns, conn)

	ud := L.NewUserData()
	ud.Value = conn
	L.SetMetatable(ud, L.GetTypeMetatable(connTypeName))
	L.Push(ud)
	L.Push(lua.LNil)
	return 2
}

// trigger(name [, value]) -> results, err
func (e *Engine[ID]) triggerFn(L *lua.LState) int {
	id := e.lookupID(L, L.CheckString(1))
	arg := toGo(L.Get(2))

	results, err := levent.Trigger[any, any](e.reg, id, arg)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	tbl := L.NewTable()
	for _, r := range results {
		tbl.Append(toLua(L, r))
	}
	L.Push(tbl)
	L.Push(lua.LNil)
	return 2
}

// block(flag)
func (e *Engine[ID]) blockFn(L *lua.LState) int {
	e.reg.BlockEvents(L.CheckBool(1))
	return 0
}

func connDisconnect(L *lua.LState) int {
	ud := L.CheckUserData(1)
	if conn, ok := ud.Value.(*levent.Connection); ok {
		conn.Disconnect()
	}
	return 0
}

func connLive(L *lua.LState) int {
	ud := L.CheckUserData(1)
	conn, ok := ud.Value.(*levent.Connection)
	L.Push(lua.LBool(ok && conn.Live()))
	return 1
}
