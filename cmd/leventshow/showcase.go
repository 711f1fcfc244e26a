package main

import (
	"fmt"

	levent "github.com/ryder052/LEvent"
	"github.com/ryder052/LEvent/internal/config"
	"github.com/ryder052/LEvent/script"
)

// showEvent is the showcase's registry identifier domain.
type showEvent int

const (
	evString showEvent = iota
	evVoid
	evScript
	showEventCount // sentinel
)

var showEventNames = map[string]showEvent{
	"string": evString,
	"void":   evVoid,
	"script": evScript,
}

func resolveShowEvent(name string) (showEvent, bool) {
	id, ok := showEventNames[name]
	return id, ok
}

// listenerKind tags which flavor of listener produced a result.
type listenerKind int

const (
	kindFree listenerKind = iota
	kindMember
	kindCallable
)

func (k listenerKind) String() string {
	switch k {
	case kindFree:
		return "free"
	case kindMember:
		return "member"
	case kindCallable:
		return "callable"
	default:
		return "unknown"
	}
}

func freeListener(s string) listenerKind {
	fmt.Printf("[free] %s\n", s)
	return kindFree
}

type greeter struct{}

func (*greeter) Listen(s string) listenerKind {
	fmt.Printf("[member] %s\n", s)
	return kindMember
}

// runShowcase walks through the standalone, registry and script scenarios,
// applying the configured priorities and block switch.
func runShowcase(cfg config.Config) error {
	if err := standaloneScenario(cfg); err != nil {
		return err
	}
	if err := registryScenario(cfg); err != nil {
		return err
	}
	return scriptScenario(cfg)
}

func priorityFor(cfg config.Config, name string, fallback levent.Priority) levent.Priority {
	if p, ok := cfg.Priorities[name]; ok {
		return levent.Priority(p)
	}
	return fallback
}

func standaloneScenario(cfg config.Config) error {
	fmt.Println("-- standalone event --")

	ev := levent.New[listenerKind, string]()
	var g greeter

	free, err := ev.Add(levent.Func(freeListener), levent.WithPriority(priorityFor(cfg, "free", 2)))
	if err != nil {
		return fmt.Errorf("adding free listener: %w", err)
	}
	bound, err := ev.Add(levent.Bind(&g, (*greeter).Listen), levent.WithPriority(priorityFor(cfg, "member", 0)))
	if err != nil {
		return fmt.Errorf("adding member listener: %w", err)
	}
	lambda, err := ev.Add(levent.Callable(func(s string) listenerKind {
		fmt.Printf("[lambda] %s\n", s)
		return kindCallable
	}), levent.WithPriority(priorityFor(cfg, "lambda", 1)))
	if err != nil {
		return fmt.Errorf("adding lambda listener: %w", err)
	}

	fmt.Println("results:", ev.Trigger("Event #1"))

	// Drop the lambda listener and broadcast again.
	if err := ev.Remove(lambda); err != nil {
		return fmt.Errorf("removing lambda listener: %w", err)
	}
	fmt.Println("results:", ev.Trigger("Event #2"))

	// Drop the rest; a set aggregation over no listeners stays empty.
	free.Disconnect()
	bound.Disconnect()
	set := make(map[listenerKind]struct{})
	ev.TriggerInto(func(k listenerKind) { set[k] = struct{}{} }, "Event #3")
	fmt.Println("set results:", set)

	return nil
}

func registryScenario(cfg config.Config) error {
	fmt.Println("-- registry --")

	reg := levent.NewRegistry(showEventCount)
	reg.BlockEvents(cfg.Blocked)

	levent.Declare[listenerKind, string](reg, evString)
	levent.Declare[levent.Void, *int](reg, evVoid)

	// Three callables on the same slot; the set collapses their results.
	for i := 0; i < 3; i++ {
		conn := levent.Connect(reg, evString, levent.Callable(func(s string) listenerKind {
			fmt.Printf("[functor] %s\n", s)
			return kindCallable
		}), levent.WithPriority(levent.Priority(i)))
		if err := conn.Err(); err != nil {
			return fmt.Errorf("connecting functor %d: %w", i, err)
		}
		defer conn.Close()
	}

	set := make(map[listenerKind]struct{})
	if err := levent.TriggerInto(reg, evString, func(k listenerKind) { set[k] = struct{}{} }, "Managed Event #1"); err != nil {
		fmt.Println("trigger refused:", err)
	} else {
		fmt.Println("set results:", set)
	}

	// Void signature, shared counter.
	c0 := levent.Connect(reg, evVoid, levent.Proc(func(n *int) { *n++ }), levent.AllowDuplicates())
	c1 := levent.Connect(reg, evVoid, levent.Proc(func(n *int) { *n++ }), levent.AllowDuplicates())
	defer c0.Close()
	defer c1.Close()

	counter := 0
	if _, err := levent.Trigger[levent.Void](reg, evVoid, &counter); err != nil {
		fmt.Println("trigger refused:", err)
	} else {
		fmt.Println("counter:", counter)
	}

	return nil
}

func scriptScenario(cfg config.Config) error {
	if len(cfg.Scripts) == 0 {
		return nil
	}
	fmt.Println("-- scripts --")

	reg := levent.NewRegistry(showEventCount)
	reg.BlockEvents(cfg.Blocked)
	levent.Declare[any, any](reg, evScript)

	engine := script.New(reg, resolveShowEvent)
	defer engine.Close()

	for _, path := range cfg.Scripts {
		if err := engine.DoFile(path); err != nil {
			return fmt.Errorf("loading script %s: %w", path, err)
		}
	}

	results, err := levent.Trigger[any, any](reg, evScript, "Scripted Event #1")
	if err != nil {
		fmt.Println("trigger refused:", err)
		return nil
	}
	fmt.Printf("script results (%d listeners): %v\n", engine.Connections(), results)
	return nil
}
