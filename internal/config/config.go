package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the single externally injected configuration value. Credentials,
// cookies and session ids are opaque and expirable: when a source starts
// refusing requests, the operator refreshes them (browser session for
// SeLoger, token endpoint for Bien'ici) and re-runs; nothing here refreshes
// them automatically.
type Config struct {
	// Notaires (notary federation API)
	NotairesBaseURL string

	// Bien'ici (listings aggregator)
	BienICIBaseURL     string
	BienICIAccessToken string
	BienICISessionID   string

	// SeLoger (classifieds API)
	SeLogerBaseURL string
	SeLogerCookie  string // raw Cookie header captured from a browser session

	UserAgent string

	// Directories
	DataDir string // per-department intermediate files
	OutDir  string // merged dataset

	// Scraping limits
	MaxWorkers int
	MaxPages   int // per-department page ceiling (truncation guard)
	PageSize   int

	// SFTP publish (optional)
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
}

// Load reads .env when present, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file, using environment only")
	}

	return Config{
		NotairesBaseURL: getenv("NOTAIRES_BASE_URL", "https://www.immobilier.notaires.fr/pub-services/inotr-www-annonces/v1"),

		BienICIBaseURL:     getenv("BIENICI_BASE_URL", "https://www.bienici.com"),
		BienICIAccessToken: os.Getenv("BIENICI_ACCESS_TOKEN"),
		BienICISessionID:   os.Getenv("BIENICI_SESSION_ID"),

		SeLogerBaseURL: getenv("SELOGER_BASE_URL", "https://www.seloger.com"),
		SeLogerCookie:  os.Getenv("SELOGER_COOKIE"),

		UserAgent: getenv("SCRAPER_USER_AGENT", ""),

		DataDir: getenv("DATA_DIR", "data/departements"),
		OutDir:  getenv("OUT_DIR", "data"),

		MaxWorkers: getenvInt("MAX_WORKERS", 10),
		MaxPages:   getenvInt("MAX_PAGES", 200),
		PageSize:   getenvInt("PAGE_SIZE", 50),

		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOST_KEY", true),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
