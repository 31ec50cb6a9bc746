package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings is the process wide configuration. It is loaded once in main and
// handed to every component that needs it.
type Settings struct {
	ListenAddr  string
	Environment string

	SupabaseURL        string
	SupabaseKey        string
	SupabaseServiceKey string

	CarbonAPIKey  string
	CarbonBaseURL string

	//empty token disables bearer auth on the api
	AuthToken string

	//empty addr keeps the rate limiter in memory
	RedisAddr string

	BackendTimeout     time.Duration
	RateLimitPerSecond float64
	RateLimitBurst     int
}

func (s Settings) IsProd() bool {
	return s.Environment == "prod" || s.Environment == "production"
}

// AuthDisabled reports whether the api is open (no bearer token configured).
func (s Settings) AuthDisabled() bool {
	return s.AuthToken == ""
}

// Load reads .env (if any) and the process environment.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds Settings from a lookup function so tests can feed a map.
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	s := Settings{
		ListenAddr:         get("LISTEN_ADDR", ServerListenAddr),
		Environment:        get("APP_ENV", "development"),
		SupabaseURL:        get("SUPABASE_URL", ""),
		SupabaseKey:        get("SUPABASE_KEY", ""),
		SupabaseServiceKey: get("SUPABASE_SERVICE_KEY", ""),
		CarbonAPIKey:       get("CARBON_API_KEY", ""),
		CarbonBaseURL:      get("CARBON_BASE_URL", CarbonBaseURL),
		AuthToken:          get("API_AUTH_TOKEN", ""),
		RedisAddr:          get("REDIS_ADDR", ""),
		BackendTimeout:     BackendTimeout,
		RateLimitPerSecond: RATE_LIMIT_PER_SECOND,
		RateLimitBurst:     BURST_RATE_LIMIT_PER_SECOND,
	}

	var errs []error
	if v, ok := lookup("BACKEND_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, errors.New("BACKEND_TIMEOUT: "+err.Error()))
		} else {
			s.BackendTimeout = d
		}
	}
	if v, ok := lookup("RATE_LIMIT_PER_SECOND"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND: "+err.Error()))
		} else {
			s.RateLimitPerSecond = f
		}
	}
	if v, ok := lookup("RATE_LIMIT_BURST"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, errors.New("RATE_LIMIT_BURST: "+err.Error()))
		} else {
			s.RateLimitBurst = n
		}
	}

	if s.RateLimitPerSecond <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND must be greater than zero"))
	}
	if s.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be greater than zero"))
	}
	if s.BackendTimeout <= 0 {
		errs = append(errs, errors.New("BACKEND_TIMEOUT must be greater than zero"))
	}

	if s.SupabaseURL == "" {
		errs = append(errs, errors.New("SUPABASE_URL is required"))
	}
	if s.SupabaseKey == "" {
		errs = append(errs, errors.New("SUPABASE_KEY is required"))
	}
	if s.CarbonAPIKey == "" {
		errs = append(errs, errors.New("CARBON_API_KEY is required"))
	}
	//admin lookups need the service role key, fall back to the anon key
	if s.SupabaseServiceKey == "" {
		s.SupabaseServiceKey = s.SupabaseKey
	}
	return s, errors.Join(errs...)
}
