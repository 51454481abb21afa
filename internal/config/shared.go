package config

// --- Shared Configs ---

type ServerConfig struct {
	HTTPPort string
	Name     string
	LogLevel string // debug, info, warn, error
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host string
	Port string
}

// WalletConfig holds the money-movement knobs
type WalletConfig struct {
	OwnerID       string // reserved house account identifier
	MinBet        int64
	MinGiftAmount int64
}
