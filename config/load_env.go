package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/subosito/gotenv"
)

func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// Config holds every knob the pipeline reads. All values come from the
// environment with hard-coded defaults; there are no CLI flags.
type Config struct {
	DatasetPath string
	TestSize    float64
	RandomSeed  int64
	VocabSize   int
	OutputDir   string
}

func FromEnv() Config {
	return Config{
		DatasetPath: envString("DATASET_PATH", "data/emotions.csv"),
		TestSize:    envFloat("TEST_SIZE", 0.2),
		RandomSeed:  int64(envInt("RANDOM_SEED", 42)),
		VocabSize:   envInt("VOCAB_SIZE", 3000),
		OutputDir:   envString("OUTPUT_DIR", "plots"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}
