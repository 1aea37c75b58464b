// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default `.env` file (or explicitly listed files via LoadEnv) is loaded into
// the process environment, then Load parses the environment into any struct
// annotated with `env` tags.
//
// Every package in this repository declares its own Config struct with env
// tags and sane defaults; the binary wires them together in main:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
// Errors are sentinel values combined with errors.Join, so callers can use
// errors.Is to distinguish a parse failure from a missing .env file.
package config
