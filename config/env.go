// Package config loads application settings from config/app.json and .env,
// falling back to built-in defaults. Values are read once and cached.
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultMongoURI  = "mongodb://localhost:27017"
	defaultMongoDB   = "homegrown"
	defaultRedisAddr = "localhost:6379"
	defaultJWTSecret = "change-me-in-production"
	defaultAppPort   = "8080"
	defaultAppEnv    = "local"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"MONGO_URI":      defaultMongoURI,
		"MONGO_DB":       defaultMongoDB,
		"REDIS_ADDR":     defaultRedisAddr,
		"REDIS_PASSWORD": "",
		"JWT_SECRET":     defaultJWTSecret,
		"APP_PORT":       defaultAppPort,
		"APP_ENV":        defaultAppEnv,
	}
}

// MongoURI returns the MongoDB connection string.
func MongoURI() string {
	_ = Load()
	return get("MONGO_URI", defaultMongoURI)
}

// MongoDatabase returns the database name holding the storefront collections.
func MongoDatabase() string {
	_ = Load()
	return get("MONGO_DB", defaultMongoDB)
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", defaultRedisAddr)
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

func JWTSecret() string {
	_ = Load()
	return get("JWT_SECRET", defaultJWTSecret)
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// ── Media storage ────────────────────────────────────────────────────────────
// Product images are offloaded to an S3-compatible object store (AWS S3,
// MinIO, R2). With MEDIA_DRIVER=local (the development default) uploads land
// on the local filesystem instead.

func MediaDriver() string     { _ = Load(); return get("MEDIA_DRIVER", "local") }
func MediaLocalRoot() string  { _ = Load(); return get("MEDIA_LOCAL_ROOT", "storage/media") }
func MediaLocalURL() string   { _ = Load(); return get("MEDIA_LOCAL_URL", "http://localhost:8080/media") }
func MediaS3Bucket() string   { _ = Load(); return get("S3_BUCKET", "") }
func MediaS3Region() string   { _ = Load(); return get("S3_REGION", "us-east-1") }
func MediaS3Key() string      { _ = Load(); return get("S3_KEY", "") }
func MediaS3Secret() string   { _ = Load(); return get("S3_SECRET", "") }
func MediaS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }
func MediaS3URL() string      { _ = Load(); return get("S3_URL", "") }

// LogMongoURI enables the async MongoDB log handler when non-empty.
func LogMongoURI() string { _ = Load(); return get("LOG_MONGO_URI", "") }

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
