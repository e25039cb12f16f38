package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr     string // API bind address
	LogDir   string // logs directory
	LogLevel string // zap level name
	DataFile string // registry document path; empty means in-memory only

	ProbeTimeout time.Duration // per-probe HTTP timeout
	StrictStatus bool          // treat 5xx responses as offline

	RetryAttempts int           // probe attempts per check; 1 = single GET
	RetryBackoff  time.Duration // backoff between retry attempts

	SweepInterval time.Duration // full-sweep period
	InitialDelay  time.Duration // delay before the first sweep
	ProbePacing   time.Duration // delay between probes inside a sweep

	PublicRPM int // per-IP requests per minute; 0 disables limiting
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "data/links.json"
	}

	return Config{
		Addr:          addr,
		LogDir:        logDir,
		LogLevel:      os.Getenv("LOG_LEVEL"),
		DataFile:      dataFile,
		ProbeTimeout:  envDuration("PROBE_TIMEOUT_MS", 15*time.Second),
		StrictStatus:  os.Getenv("STRICT_STATUS") == "true",
		RetryAttempts: envInt("RETRY_ATTEMPTS", 1),
		RetryBackoff:  envDuration("RETRY_BACKOFF_MS", 300*time.Millisecond),
		SweepInterval: envDuration("SWEEP_INTERVAL_MS", 10*time.Minute),
		InitialDelay:  envDuration("INITIAL_DELAY_MS", 30*time.Second),
		ProbePacing:   envDuration("PROBE_PACING_MS", time.Second),
		PublicRPM:     envInt("PUBLIC_RPM", 0),
	}
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envDuration(name string, def time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}
