package levent_test

import (
	"fmt"

	levent "github.com/ryder052/LEvent"
)

// Example_standaloneEvent demonstrates a standalone event with prioritized
// listeners.
func Example_standaloneEvent() {
	ev := levent.New[string, string]()

	first, err := ev.Add(levent.Callable(func(s string) string {
		return "first: " + s
	}), levent.WithPriority(2))
	if err != nil {
		fmt.Printf("Add failed: %v\n", err)
		return
	}
	defer first.Close()

	second, err := ev.Add(levent.Callable(func(s string) string {
		return "second: " + s
	}), levent.WithPriority(1))
	if err != nil {
		fmt.Printf("Add failed: %v\n", err)
		return
	}
	defer second.Close()

	for _, r := range ev.Trigger("hello") {
		fmt.Println(r)
	}

	// Output:
	// first: hello
	// second: hello
}

// Example_registry demonstrates declaring, connecting and triggering
// through an enumerated registry.
func Example_registry() {
	type appEvent int
	const (
		evGreeting appEvent = iota
		evFarewell
		appEventCount
	)

	reg := levent.NewRegistry(appEventCount)
	levent.Declare[string, string](reg, evGreeting)

	conn := levent.Connect(reg, evGreeting, levent.Callable(func(name string) string {
		return "hello " + name
	}))
	if err := conn.Err(); err != nil {
		fmt.Printf("Connect failed: %v\n", err)
		return
	}
	defer conn.Close()

	results, err := levent.Trigger[string](reg, evGreeting, "world")
	if err != nil {
		fmt.Printf("Trigger failed: %v\n", err)
		return
	}
	fmt.Println(results)

	// An undeclared slot fails type matching instead of dispatching.
	if _, err := levent.Trigger[string](reg, evFarewell, "world"); err != nil {
		fmt.Println(err)
	}

	// Output:
	// [hello world]
	// failed to match event type
}

// Example_setAggregation collects broadcast results into a set instead of
// an ordered sequence.
func Example_setAggregation() {
	ev := levent.New[int, int]()

	for i := 0; i < 3; i++ {
		conn, err := ev.Add(levent.Callable(func(n int) int { return n * n }))
		if err != nil {
			fmt.Printf("Add failed: %v\n", err)
			return
		}
		defer conn.Close()
	}

	squares := make(map[int]struct{})
	ev.TriggerInto(func(n int) { squares[n] = struct{}{} }, 4)
	fmt.Println(len(squares))

	// Output: 1
}
