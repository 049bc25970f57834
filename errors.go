package ggtri

import "errors"

// Errors returned by the backend.
var (
	// ErrNilRenderer is returned by Initialize when no renderer is given.
	ErrNilRenderer = errors.New("ggtri: nil renderer")

	// ErrNilAtlas is returned by Initialize when no font atlas is given.
	ErrNilAtlas = errors.New("ggtri: nil font atlas")

	// ErrShutdown is returned by Render after Shutdown.
	ErrShutdown = errors.New("ggtri: backend is shut down")

	// ErrInvalidConfig is returned for configurations that fail validation.
	ErrInvalidConfig = errors.New("ggtri: invalid config")
)
