package service

// IDGenerator produces fresh response identifiers. It is injected so tests
// can pin deterministic IDs instead of relying on process-wide state.
type IDGenerator interface {
	NewID() string
}
