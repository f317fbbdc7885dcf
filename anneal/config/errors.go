package config

import "errors"

var (
	// ErrNoInteraction indicates a Run with an empty interaction.
	ErrNoInteraction = errors.New("config: interaction must have at least one term")

	// ErrNoSweeps indicates a Run with num_sweeps <= 0.
	ErrNoSweeps = errors.New("config: num_sweeps must be positive")
)
