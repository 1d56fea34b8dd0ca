package mosaic

import "fmt"

// Default configuration values.
const (
	DefaultSampleSize     = 10
	DefaultAllowableError = 15
)

// Config holds the options recognized by the mosaic pipeline.
type Config struct {
	// SampleSize is the edge, in target pixels, of each sampling block.
	SampleSize int `json:"sample_size"`

	// SubImageSize is the edge, in output pixels, of each mosaic cell.
	// Zero means unset, i.e. "same as SampleSize". Use SetSubImageSize for
	// user-supplied values.
	SubImageSize int `json:"sub_image_size"`

	// AllowableError is the per-channel tolerance a tile's average color must
	// fall within to replace a block.
	AllowableError int `json:"allowable_error"`

	// Verbose enables one diagnostic line per ingested tile.
	Verbose bool `json:"verbose"`

	// Seed fixes the tile selection sequence. Zero picks a fresh seed per run.
	Seed uint64 `json:"seed"`
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		SampleSize:     DefaultSampleSize,
		AllowableError: DefaultAllowableError,
	}
}

// CellSize is the effective mosaic cell edge: SubImageSize, or SampleSize
// when SubImageSize is unset.
func (c Config) CellSize() int {
	if c.SubImageSize == 0 {
		return c.SampleSize
	}
	return c.SubImageSize
}

// Validate reports an ErrInvalidConfig for non-positive sizes or a negative
// allowable error.
func (c Config) Validate() error {
	if c.SampleSize <= 0 {
		return fmt.Errorf("%w: sample size must be positive, got %d", ErrInvalidConfig, c.SampleSize)
	}
	if c.SubImageSize < 0 {
		return fmt.Errorf("%w: sub-image size must not be negative, got %d", ErrInvalidConfig, c.SubImageSize)
	}
	if c.AllowableError < 0 {
		return fmt.Errorf("%w: allowable error must not be negative, got %d", ErrInvalidConfig, c.AllowableError)
	}
	return nil
}

// SetSubImageSize records an explicitly requested cell size. Unlike the unset
// zero value, a requested size must be positive.
func (c *Config) SetSubImageSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: sub-image size must be positive, got %d", ErrInvalidConfig, n)
	}
	c.SubImageSize = n
	return nil
}
