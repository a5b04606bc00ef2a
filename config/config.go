package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	Port             string
	AWSRegion        string
	AWSAccessKeyID   string
	AWSSecretKey     string
	BooksTable       string
	CastTable        string
	DynamoDBEndpoint string // set for DynamoDB Local; empty in real deployments
}

func Load() (*Config, error) {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		AWSRegion:        getEnv("AWS_REGION", "eu-west-1"),
		AWSAccessKeyID:   getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:     getEnv("AWS_SECRET_ACCESS_KEY", ""),
		BooksTable:       getEnv("BOOKS_TABLE", "Books"),
		CastTable:        getEnv("CAST_TABLE", "BookCastMembers"),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// RequiredEnvVars are checked at startup; app exits if any are unset.
var RequiredEnvVars = []string{
	"AWS_REGION",
	"BOOKS_TABLE",
	"CAST_TABLE",
}

// OptionalEnvVars are logged at startup so you can confirm they are loaded when set.
var OptionalEnvVars = []string{
	"PORT",
	"DYNAMODB_ENDPOINT",
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
}

// ValidateEnv checks that all required env vars are set and logs status of
// required + optional. Calls log.Fatal if any required var is missing.
func ValidateEnv() {
	var missing []string
	for _, key := range RequiredEnvVars {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		} else {
			log.Printf("env %s loaded", key)
		}
	}
	if len(missing) > 0 {
		log.Fatalf("missing required env: %s (set these in .env or environment)", strings.Join(missing, ", "))
	}
	for _, key := range OptionalEnvVars {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			log.Printf("env %s not set (optional)", key)
			continue
		}
		// Don't log secret values
		if key == "AWS_ACCESS_KEY_ID" || key == "AWS_SECRET_ACCESS_KEY" {
			log.Printf("env %s loaded", key)
		} else {
			log.Printf("env %s = %s", key, v)
		}
	}
}
