package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret          string
	NominatimBaseURL   string
	NominatimUserAgent string

	// MapShowAll disables the bounding-box filter on the map query so every
	// post is returned ("show everything" views). Single switch, read once.
	MapShowAll bool

	// RunDBSeeders loads the demo dataset at startup. Dev/demo only.
	RunDBSeeders bool
)

const (
	DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

	// Nominatim's usage policy requires a client-identifying User-Agent;
	// anonymous clients get blocked.
	DefaultNominatimUserAgent = "PhotoGraph/1.0 (University of Glasgow student project)"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ no .env file found, using system ENV")
		}
	}

	JWTSecret = GetEnv("JWT_SECRET")
	NominatimBaseURL = GetEnv("NOMINATIM_BASE_URL", DefaultNominatimBaseURL)
	NominatimUserAgent = GetEnv("NOMINATIM_USER_AGENT", DefaultNominatimUserAgent)
	MapShowAll = GetEnvBool("MAP_SHOW_ALL", false)
	RunDBSeeders = GetEnvBool("RUN_DB_SEEDERS", false)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}
