package levent

import "strconv"

// Priority determines listener execution order within an event.
// Higher values execute first; the default is 0.
type Priority int

// String returns the numeric priority as text.
func (p Priority) String() string {
	return strconv.Itoa(int(p))
}

// Void is the result type for listeners that return nothing. It doubles as
// the argument type for events triggered without a payload.
type Void struct{}

// Enum constrains registry identifier types: dense small integer enums with
// a terminal "count" sentinel used only for slot-table sizing.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
