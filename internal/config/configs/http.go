package configs

// HTTP defines configuration for the HTTP server. RateLimit and RateBurst
// size the token bucket shared by all simulation requests; a RateLimit of
// zero disables limiting.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// RateLimit is the sustained number of requests per second.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"20"`
	// RateBurst is the bucket capacity.
	RateBurst int `env:"RATE_BURST" envDefault:"40"`
	// MaxBodyBytes caps the size of a simulation request body.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}
