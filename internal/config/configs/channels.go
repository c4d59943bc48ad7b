package configs

// Channels points at an optional YAML channel table. It is consulted only
// when the PostgreSQL store is disabled.
type Channels struct {
	File string `env:"FILE"`
}
