package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	CORS       CORSConfig       `mapstructure:"cors"       validate:"required"`
	Suggestion SuggestionConfig `mapstructure:"suggestion" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                int    `mapstructure:"port"                  validate:"required,gt=0,lt=65536"`
	LogLevel            string `mapstructure:"log_level"             validate:"required,oneof=debug info warn error"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"  validate:"gt=0"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// CORSConfig lists the browser origins allowed to call the API with credentials.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,url"`
}

// SuggestionConfig configures the external content endpoint used to fill in
// missing task descriptions.
type SuggestionConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
	// TimeoutSeconds bounds the outbound call. It must be finite.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gt=0,lte=60"`
}
