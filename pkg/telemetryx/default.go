package telemetryx

var (
	// defaultRegistry is the process-wide bus instance
	defaultRegistry = NewRegistry()
)

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Attach binds a handler on the default registry.
func Attach(handlerID string, events []Event, fn HandlerFunc, cfg interface{}) error {
	return defaultRegistry.Attach(handlerID, events, fn, cfg)
}

// Detach removes a handler from the default registry.
func Detach(handlerID string) {
	defaultRegistry.Detach(handlerID)
}

// Execute emits an event on the default registry.
func Execute(event Event, measurements Measurements, metadata Metadata) {
	defaultRegistry.Execute(event, measurements, metadata)
}
