package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	MaxInputLength int
	// TraceOutput is "" for no tracing, "stdout", or a file path.
	TraceOutput string
	ServiceName string
}

// LoadEnv reads .env files into the process environment when present.
func LoadEnv(filenames ...string) {
	err := godotenv.Load(filenames...)
	if err != nil {
		log.Println("No .env file found, relying on system environment variables")
	}
}

// Load builds a Config from the environment.
func Load() Config {
	cfg := Config{
		Port:           GetEnv("PORT", "8080"),
		GinMode:        os.Getenv("GIN_MODE"),
		MaxInputLength: GetEnvInt("MAX_INPUT_LENGTH", 256),
		TraceOutput:    os.Getenv("TRACE_OUTPUT"),
		ServiceName:    GetEnv("SERVICE_NAME", "hashpix"),
	}
	log.Println("PORT:", cfg.Port)
	log.Println("GIN_MODE:", cfg.GinMode)
	log.Println("MAX_INPUT_LENGTH:", cfg.MaxInputLength)
	log.Println("TRACE_OUTPUT:", cfg.TraceOutput)
	return cfg
}

func GetEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func GetEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("Environment variable %s=%q is not a number, using %d", key, val, fallback)
		return fallback
	}
	return n
}
