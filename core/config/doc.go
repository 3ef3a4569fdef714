// Package config provides configuration management for cutter.
//
// It utilizes Viper for loading configuration from environment
// variables and an optional .env file. Defaults are declared as struct
// tags and bound recursively, so every key is resolvable from the
// environment without a config file being present.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Storage: S3/MinIO endpoint, credentials, bucket defaults
//   - Log: logging level and format
//   - Server: HTTP trigger port and API key
//
// Per-run parameters (source path, crop sizes, overwrite behaviour)
// are command-line flags, validated before a batch starts, and are
// deliberately not part of this struct.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Endpoint)
package config
