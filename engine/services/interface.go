package services

// Service defines the lifecycle of a non-ECS subsystem (audio, score store, metrics endpoint)
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies lists services that must be initialized first
	Dependencies() []string

	// Init receives the world for dependency injection
	// Called after World and core resources exist; services bridge their resources here
	Init(world any) error

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	Stop() error
}
