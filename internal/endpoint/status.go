package endpoint

// Status is the outcome of a resolved request, modelled on the constrained
// request/response codes the registry protocol uses. The transport adapter
// maps these onto its own status space.
type Status uint8

// Statuses surfaced by the dispatcher.
const (
	// StatusContent is success with a payload (count and category reads).
	StatusContent Status = iota + 1

	// StatusChanged is success for submitted requests (index lookups);
	// a payload may still accompany it.
	StatusChanged

	// StatusBadRequest is a malformed selector; the directory was never
	// consulted. Not retryable with the same input.
	StatusBadRequest

	// StatusNotFound is a valid selector that matches no device, or a
	// device whose read produced no data.
	StatusNotFound

	// StatusInternalError is a reply that could not be encoded within the
	// buffer capacity. The request is abandoned; the service continues.
	StatusInternalError
)

// String returns a short identifier for logging.
func (s Status) String() string {
	switch s {
	case StatusContent:
		return "content"
	case StatusChanged:
		return "changed"
	case StatusBadRequest:
		return "bad_request"
	case StatusNotFound:
		return "not_found"
	case StatusInternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}
