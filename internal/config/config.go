// Package config provides functionality for managing configuration options
// for the server using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for the server.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// ImagesDir is the directory coffee images are served from.
	ImagesDir string

	// TokenTTLHours is how long an issued bearer token stays valid.
	TokenTTLHours int

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.ImagesDir, "images", "images", "directory with coffee images")
	flag.IntVar(&options.TokenTTLHours, "ttl", 72, "bearer token lifetime in hours")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if imagesDir := os.Getenv("IMAGES_DIR"); imagesDir != "" {
		options.ImagesDir = imagesDir
	}

	return options
}
