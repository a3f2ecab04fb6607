package config

// DuplicateConfig holds settings for duplicate final-position detection.
type DuplicateConfig struct {
	// Detect reports scripts that end on a position seen earlier
	Detect bool

	// ExactMatch also requires the same number of moves
	ExactMatch bool

	// MaxCapacity bounds the stored positions (0 = unlimited)
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
