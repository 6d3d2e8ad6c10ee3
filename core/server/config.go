package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// ApiKey is the secret key required to access the API. Empty disables
	// authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// DefaultGame is the game used when a request carries no game parameter.
	DefaultGame string `mapstructure:"default_game" default:"day"`
	// StaticDir is the directory served at the root path. Empty disables
	// static file serving.
	StaticDir string `mapstructure:"static_dir" default:"public"`
}
