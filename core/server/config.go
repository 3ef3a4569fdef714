package server

// Config holds configuration for the HTTP trigger server.
type Config struct {
	// Port is the port where the trigger server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to trigger a batch. Empty
	// disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
}
