// Package config loads server settings from the environment, with
// development defaults matching the original deployment layout.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime settings for the inquiry-booking server.
//
// Fields:
//   - Host/Port: listening address.
//   - StaticDir: root of the static site served at "/".
//   - GalleryDir / GalleryURLPrefix: photo directory listed by the
//     gallery endpoint and the URL prefix its files are served under.
//   - CSVFile: path of the local fallback/mirror store.
//   - ServiceAccountFile / SpreadsheetID / SheetName: Google Sheets
//     credentials and target worksheet.
//   - MaxMessageLength: inquiry message cap in runes (0 = unbounded).
//   - RejectPastVisitDates: enable calendar validation of visitDate.
//   - AllowedOrigins: CORS origin allow-list ("*" allows all).
//   - RateLimitPerMinute: per-IP budget on the form endpoints.
//   - RemoteTimeout: deadline for each Google Sheets call.
type Config struct {
	Host                 string
	Port                 int
	StaticDir            string
	GalleryDir           string
	GalleryURLPrefix     string
	CSVFile              string
	ServiceAccountFile   string
	SpreadsheetID        string
	SheetName            string
	MaxMessageLength     int
	RejectPastVisitDates bool
	AllowedOrigins       []string
	RateLimitPerMinute   int
	RemoteTimeout        time.Duration
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// Load builds a Config from environment variables, falling back to
// development defaults. Call godotenv.Load first if a .env file is used.
func Load() *Config {
	return &Config{
		Host:                 getenv("HOST", ""),
		Port:                 getint("PORT", 8080),
		StaticDir:            getenv("STATIC_DIR", "."),
		GalleryDir:           getenv("GALLERY_DIR", "pg-photos"),
		GalleryURLPrefix:     getenv("GALLERY_URL_PREFIX", "/pg-photos"),
		CSVFile:              getenv("CSV_FILE", "inquiries.csv"),
		ServiceAccountFile:   getenv("SERVICE_ACCOUNT_FILE", "service-account.json"),
		SpreadsheetID:        getenv("SPREADSHEET_ID", ""),
		SheetName:            getenv("SHEET_NAME", "Sheet1"),
		MaxMessageLength:     getint("MAX_MESSAGE_LENGTH", 1000),
		RejectPastVisitDates: getbool("REJECT_PAST_VISIT_DATES", false),
		AllowedOrigins:       getlist("ALLOWED_ORIGINS", []string{"*"}),
		RateLimitPerMinute:   getint("RATE_LIMIT_PER_MINUTE", 10),
		RemoteTimeout:        getduration("REMOTE_TIMEOUT", 8*time.Second),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getlist(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func getduration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
