package config

import (
	"log"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	TLS_DOMAINS    = "" // e.g. "example.com,example2.com"
	BIND_ADDRESS   = "0.0.0.0:8000"
	MYSQL_DSN      = "" // MySQL will be used if this is set
	POSTGRES_DSN   = "" // PostgreSQL will be used if MYSQL_DSN is not configured and this is set
	SQLITE_FILE    = "yatube.db"
	DEBUG_MODE     = true
	PAGINATOR      = 10 // Posts per page on every feed
	SESSION_KEY    = "" // Random per process if empty, which logs everybody out on restart
	NATS_URL       = "" // Post events are published only if this is set
	CORS_ORIGINS   = "*"
	ADMIN_USERNAME = "" // Created on start (with PermissionAdmin) if missing
	ADMIN_PASSWORD = ""
	TEMPLATES_DIR  = "" // Load templates from disk instead of the embedded copies, handy while editing them
)

func init() {
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded .env")
	}
	viper.SetConfigName("yatube")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Config file error: %v", err)
		}
	}

	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("POSTGRES_DSN", &POSTGRES_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("PAGINATOR", &PAGINATOR)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvString("NATS_URL", &NATS_URL)
	readEnvString("CORS_ORIGINS", &CORS_ORIGINS)
	readEnvString("ADMIN_USERNAME", &ADMIN_USERNAME)
	readEnvString("ADMIN_PASSWORD", &ADMIN_PASSWORD)
	readEnvString("TEMPLATES_DIR", &TEMPLATES_DIR)
	if PAGINATOR < 1 {
		log.Printf("PAGINATOR must be positive, got %d, using 10", PAGINATOR)
		PAGINATOR = 10
	}
}

func readEnvString(name string, value *string) {
	v := viper.GetString(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(viper.GetString(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := viper.GetString(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}

// CorsOrigins splits CORS_ORIGINS on commas
func CorsOrigins() []string {
	result := []string{}
	for _, origin := range strings.Split(CORS_ORIGINS, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
