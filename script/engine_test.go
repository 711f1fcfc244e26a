package script

import (
	"errors"
	"testing"

	levent "github.com/ryder052/LEvent"
)

type demoID int

const (
	evGreeting demoID = iota
	evCounter
	demoCount
)

var demoNames = map[string]demoID{
	"greeting": evGreeting,
	"counter":  evCounter,
}

func resolveDemo(name string) (demoID, bool) {
	id, ok := demoNames[name]
	return id, ok
}

func newTestEngine(t *testing.T) (*Engine[demoID], *levent.Registry[demoID]) {
	t.Helper()
	reg := levent.NewRegistry(demoCount)
	e := New(reg, resolveDemo)
	t.Cleanup(func() { e.Close() })
	return e, reg
}

func TestEngine_DeclareConnectTrigger(t *testing.T) {
	e, _ := newTestEngine(t)

	err := e.DoString(`
		local levent = require("levent")

		if not levent.declare("greeting") then
			error("declare failed")
		end

		local conn, err = levent.connect("greeting", function(name)
			return "hello " .. name
		end, 1)
		if err ~= nil then
			error(err)
		end
		if not conn:live() then
			error("connection not live")
		end

		local results, err = levent.trigger("greeting", "world")
		if err ~= nil then
			error(err)
		end
		if #results ~= 1 or results[1] ~= "hello world" then
			error("unexpected results")
		end
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
}

func TestEngine_PriorityOrderAcrossLanguages(t *testing.T) {
	e, reg := newTestEngine(t)

	if !levent.Declare[any, any](reg, evGreeting) {
		t.Fatal("Declare failed")
	}

	goConn := levent.Connect(reg, evGreeting,
		levent.Callable(func(any) any { return "go" }), levent.WithPriority(1))
	if !goConn.Live() {
		t.Fatalf("Connect failed: %v", goConn.Err())
	}

	err := e.DoString(`
		local levent = require("levent")
		local conn, err = levent.connect("greeting", function() return "lua" end, 2)
		if err ~= nil then error(err) end
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	results, err := levent.Trigger[any, any](reg, evGreeting, nil)
	if err != nil {
		t.Fatalf("Trigger failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0] != "lua" || results[1] != "go" {
		t.Errorf("results = %v, want [lua go] (priority order)", results)
	}
}

func TestEngine_DisconnectFromScript(t *testing.T) {
	e, reg := newTestEngine(t)

	err := e.DoString(`
		local levent = require("levent")
		levent.declare("counter")
		local conn, err = levent.connect("counter", function(n) return n + 1 end)
		if err ~= nil then error(err) end
		conn:disconnect()
		if conn:live() then error("connection still live after disconnect") end
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	results, terr := levent.Trigger[any, any](reg, evCounter, int64(1))
	if terr != nil {
		t.Fatalf("Trigger failed: %v", terr)
	}
	if len(results) != 0 {
		t.Errorf("got %d results after disconnect, want 0", len(results))
	}
}

func TestEngine_BlockFromScript(t *testing.T) {
	e, reg := newTestEngine(t)

	err := e.DoString(`
		local levent = require("levent")
		levent.declare("greeting")
		levent.block(true)
		local results, err = levent.trigger("greeting", "x")
		if results ~= nil then error("expected nil results while blocked") end
		if err == nil then error("expected a blocked error") end
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if !reg.Blocked() {
		t.Error("expected registry to be blocked")
	}

	if _, terr := levent.Trigger[any, any](reg, evGreeting, nil); !errors.Is(terr, levent.ErrEventsBlocked) {
		t.Errorf("Trigger while blocked = %v, want ErrEventsBlocked", terr)
	}
}

func TestEngine_ConnectBeforeDeclareFails(t *testing.T) {
	e, _ := newTestEngine(t)

	err := e.DoString(`
		local levent = require("levent")
		local conn, err = levent.connect("greeting", function() end)
		if conn ~= nil then error("expected nil connection") end
		if err == nil then error("expected an error") end
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
}

func TestEngine_UnknownEventName(t *testing.T) {
	e, _ := newTestEngine(t)

	if err := e.DoString(`require("levent").declare("no-such-event")`); err == nil {
		t.Error("expected a raised error for an unknown event name")
	}
}

func TestEngine_CloseDisconnectsListeners(t *testing.T) {
	reg := levent.NewRegistry(demoCount)
	e := New(reg, resolveDemo)

	err := e.DoString(`
		local levent = require("levent")
		levent.declare("greeting")
		levent.connect("greeting", function() return 1 end)
		levent.connect("greeting", function() return 2 end)
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if e.Connections() != 2 {
		t.Fatalf("Connections() = %d, want 2", e.Connections())
	}

	if cerr := e.Close(); cerr != nil {
		t.Fatalf("Close failed: %v", cerr)
	}

	results, terr := levent.Trigger[any, any](reg, evGreeting, nil)
	if terr != nil {
		t.Fatalf("Trigger failed: %v", terr)
	}
	if len(results) != 0 {
		t.Errorf("got %d results after Close, want 0", len(results))
	}
}
