package admission

// Config holds the admission thresholds. Zero MaxDimension disables the
// upper resolution check. MaxPixels bounds width*height before the image is
// decoded; zero disables it.
type Config struct {
	AllowedTypes []string

	MinBytes     int
	MaxBytes     int
	MinDimension int
	MaxDimension int
	MaxPixels    int

	TargetBytes        int
	StartDimension     int
	StartQuality       float64
	MaxAttempts        int
	MinQuality         float64
	MinScaledDimension int

	UnsafeThreshold float64
	FailClosed      bool
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		AllowedTypes:       []string{MIMEJPEG, MIMEPNG, MIMEWebP},
		MinBytes:           DefaultMinBytes,
		MaxBytes:           DefaultMaxBytes,
		MinDimension:       DefaultMinDimension,
		MaxPixels:          DefaultMaxPixels,
		TargetBytes:        DefaultTargetBytes,
		StartDimension:     DefaultStartDimension,
		StartQuality:       DefaultStartQuality,
		MaxAttempts:        DefaultMaxAttempts,
		MinQuality:         DefaultMinQuality,
		MinScaledDimension: DefaultMinScaledDimension,
		UnsafeThreshold:    DefaultUnsafeThreshold,
	}
}

func (c Config) allows(mimeType string) bool {
	for _, t := range c.AllowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}
