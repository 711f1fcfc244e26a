package levent

import "errors"

// Sentinel errors for event and registry operations. A nil error is the
// "OK" of the taxonomy.
var (
	// ErrEventAlreadyDefined is reserved in the taxonomy. Declare reports a
	// refused redeclaration by returning false rather than producing it.
	ErrEventAlreadyDefined = errors.New("event already defined")

	// ErrFailedToMatchEventType is returned when a registry slot is empty or
	// its declared signature differs from the one a Connect or Trigger call
	// requests. Signatures must match exactly; nothing is coerced.
	ErrFailedToMatchEventType = errors.New("failed to match event type")

	// ErrModifyingDuringBroadcast is returned when a registration or removal
	// is attempted on an event that is currently broadcasting.
	ErrModifyingDuringBroadcast = errors.New("modifying callback list during broadcast")

	// ErrCallbackAlreadyAdded is returned when a delegate equal to an
	// existing listener is registered without AllowDuplicates.
	ErrCallbackAlreadyAdded = errors.New("callback already added")

	// ErrEventsBlocked is returned by Trigger while the registry's global
	// block switch is set.
	ErrEventsBlocked = errors.New("events blocked")
)
