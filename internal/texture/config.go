package texture

// Config holds the device capabilities that accessor binding and code
// generation must respect.
type Config struct {
	// DoublePrecision enables float64 accessors. Targets without hardware
	// double support must leave it false.
	DoublePrecision bool
}

// DefaultConfig enables every kind.
func DefaultConfig() Config {
	return Config{DoublePrecision: true}
}
