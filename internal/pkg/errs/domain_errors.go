package errs

// Error categories surfaced by the booking core. Concrete errors are marked
// with one of these so callers can branch on the category with Is.
var (
	// Malformed input; rejected before any mutation
	ErrValidation = New("validation failed")
	// Referenced booking, room, category or extra does not exist
	ErrNotFound = New("entity not found")
	// No room of the category is free for the requested range
	ErrNoAvailability = New("no room available")
	// Race detected at commit time; retry with a fresh availability check
	ErrConcurrencyConflict = New("concurrent modification conflict")
	// Best-effort side channel failed; never surfaced to callers
	ErrNotificationFailure = New("notification delivery failed")

	ErrDatabaseOperationFailed = New("database operation failed")
)
