// internal/config/config.go
package config

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
	Cache    CacheConfig
	Ordering OrderingConfig
	Storage  StorageConfig
	Drive    DriveConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AppConfig struct {
	UploadDir string
	DataDir   string
}

type CacheConfig struct {
	Enabled         bool
	RedisURL        string
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	RedisDB         int
	StockTTLSeconds int
}

// OrderingConfig holds defaults for recommendation requests. Empty tracking
// lists keep the built-in keywords.
type OrderingConfig struct {
	WindowWeeks     int
	BufferFraction  float64
	LookaheadHours  float64
	Timezone        string
	TrackCategories []string
	TrackItems      []string
	VendorPatterns  []VendorPatternSetting
}

// VendorPatternSetting maps an item-name fragment to a vendor.
type VendorPatternSetting struct {
	Pattern string
	Vendor  string
}

// Location resolves Timezone, falling back to UTC.
func (c OrderingConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("invalid ORDER_TIMEZONE %q, using UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}

type StorageConfig struct {
	Provider  string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

type DriveConfig struct {
	CredentialsJSON string
	FolderID        string
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 30)
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "wild_octave")
		viper.SetDefault("DB_SSLMODE", "disable")
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("APP_UPLOAD_DIR", "./data/uploads")
		viper.SetDefault("APP_DATA_DIR", "./data/output")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_STOCK_TTL_SECONDS", 0)
		viper.SetDefault("ORDER_WINDOW_WEEKS", 6)
		viper.SetDefault("ORDER_BUFFER_FRACTION", 0.20)
		viper.SetDefault("ORDER_LOOKAHEAD_HOURS", 2)
		viper.SetDefault("ORDER_TIMEZONE", "Australia/Sydney")
		viper.SetDefault("ORDER_TRACK_CATEGORIES", "")
		viper.SetDefault("ORDER_TRACK_ITEMS", "")
		viper.SetDefault("ORDER_VENDOR_PATTERNS", "")
		viper.SetDefault("STORAGE_PROVIDER", "minio")
		viper.SetDefault("STORAGE_ENDPOINT", "")
		viper.SetDefault("STORAGE_BUCKET", "order-digests")
		viper.SetDefault("STORAGE_REGION", "")
		viper.SetDefault("STORAGE_USE_SSL", true)
		viper.SetDefault("DRIVE_CREDENTIALS_JSON", "")
		viper.SetDefault("DRIVE_FOLDER_ID", "")

		// Read from environment variables
		viper.AutomaticEnv()

		// Ensure upload and data directories exist
		ensureDir(viper.GetString("APP_UPLOAD_DIR"))
		ensureDir(viper.GetString("APP_DATA_DIR"))

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			App: AppConfig{
				UploadDir: viper.GetString("APP_UPLOAD_DIR"),
				DataDir:   viper.GetString("APP_DATA_DIR"),
			},
			Cache: CacheConfig{
				Enabled:         viper.GetBool("CACHE_ENABLED"),
				RedisURL:        viper.GetString("REDIS_URL"),
				RedisHost:       viper.GetString("REDIS_HOST"),
				RedisPort:       viper.GetString("REDIS_PORT"),
				RedisPassword:   viper.GetString("REDIS_PASSWORD"),
				RedisDB:         viper.GetInt("REDIS_DB"),
				StockTTLSeconds: viper.GetInt("CACHE_STOCK_TTL_SECONDS"),
			},
			Ordering: OrderingConfig{
				WindowWeeks:     viper.GetInt("ORDER_WINDOW_WEEKS"),
				BufferFraction:  viper.GetFloat64("ORDER_BUFFER_FRACTION"),
				LookaheadHours:  viper.GetFloat64("ORDER_LOOKAHEAD_HOURS"),
				Timezone:        viper.GetString("ORDER_TIMEZONE"),
				TrackCategories: splitList(viper.GetString("ORDER_TRACK_CATEGORIES")),
				TrackItems:      splitList(viper.GetString("ORDER_TRACK_ITEMS")),
				VendorPatterns:  parseVendorPatterns(viper.GetString("ORDER_VENDOR_PATTERNS")),
			},
			Storage: StorageConfig{
				Provider:  viper.GetString("STORAGE_PROVIDER"),
				Endpoint:  viper.GetString("STORAGE_ENDPOINT"),
				AccessKey: viper.GetString("STORAGE_ACCESS_KEY"),
				SecretKey: viper.GetString("STORAGE_SECRET_KEY"),
				Bucket:    viper.GetString("STORAGE_BUCKET"),
				Region:    viper.GetString("STORAGE_REGION"),
				UseSSL:    viper.GetBool("STORAGE_USE_SSL"),
			},
			Drive: DriveConfig{
				CredentialsJSON: viper.GetString("DRIVE_CREDENTIALS_JSON"),
				FolderID:        viper.GetString("DRIVE_FOLDER_ID"),
			},
		}
	})

	return instance
}

// splitList reads a comma separated env value, dropping blank entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// parseVendorPatterns reads "pattern=vendor" pairs separated by commas, in order.
func parseVendorPatterns(raw string) []VendorPatternSetting {
	var out []VendorPatternSetting
	for _, pair := range splitList(raw) {
		pattern, vendor, ok := strings.Cut(pair, "=")
		pattern, vendor = strings.TrimSpace(pattern), strings.TrimSpace(vendor)
		if !ok || pattern == "" || vendor == "" {
			log.Printf("ignoring malformed ORDER_VENDOR_PATTERNS entry %q", pair)
			continue
		}
		out = append(out, VendorPatternSetting{Pattern: pattern, Vendor: vendor})
	}
	return out
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
