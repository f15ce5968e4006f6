package entity

import "errors"

var (
	// ErrNotFound is returned when an operation references an id absent from the registry.
	ErrNotFound = errors.New("node not found")

	// ErrInvalidZone is returned when a drop zone is none or outside the enum.
	ErrInvalidZone = errors.New("invalid drop zone")

	// ErrStructuralInvariant signals a broken tree. It indicates a bug in
	// collapse/flatten logic and must never be observable by callers.
	ErrStructuralInvariant = errors.New("structural invariant violation")

	// ErrPayloadDelivery is returned when a drop payload could not be handed
	// to the target tab container.
	ErrPayloadDelivery = errors.New("payload delivery failed")

	// ErrInvalidShares is returned when a share vector does not match a splitter.
	ErrInvalidShares = errors.New("invalid splitter shares")

	// ErrDuplicateID is returned when inserting an id that is live or was released.
	ErrDuplicateID = errors.New("node id already used")
)
