package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	App    *AppCfg
	Http   *HTTPConfig
	Photo  *PhotoCfg
	Notify *NotifyCfg
}

type AppCfg struct {
	EditMode        domain.EditMode // staged или inline
	SwaggerURL      string          // Адрес doc.json для swagger UI
	ShutdownTimeout time.Duration
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PhotoCfg struct {
	MaxSize       int64 // Максимальный размер файла фото в байтах
	MaxConcurrent int   // Лимит одновременных чтений фото
}

type NotifyCfg struct {
	Capacity int // Сколько уведомлений хранится до того, как клиент их заберёт
}

// LoadLogLevel возвращает уровень логирования. Нужен до создания логгера, поэтому читается отдельно.
func LoadLogLevel() string {
	return getEnvOrDefault("LOG_LEVEL", "info")
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	app, err := loadAppCfg(log, http)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	photo, err := loadPhotoCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	notify, err := loadNotifyCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		App:    app,
		Http:   http,
		Photo:  photo,
		Notify: notify,
	}, nil
}

func loadAppCfg(log logger.Logger, http *HTTPConfig) (*AppCfg, error) {
	const (
		defaultEditMode        = string(domain.EditModeStaged)
		defaultShutdownTimeout = 10 * time.Second
	)

	mode, err := domain.ParseEditMode(getEnvOrDefault("EDIT_MODE", defaultEditMode))
	if err != nil {
		log.Errorf(err, "invalid EDIT_MODE")
		return nil, err
	}

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		log.Errorf(err, "invalid SHUTDOWN_TIMEOUT")
		return nil, err
	}

	defaultSwaggerURL := fmt.Sprintf("http://localhost:%s/swagger/doc.json", http.Port)

	return &AppCfg{
		EditMode:        mode,
		SwaggerURL:      getEnvOrDefault("SWAGGER_URL", defaultSwaggerURL),
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)
	if _, err := strconv.Atoi(port); err != nil {
		log.Errorf(err, "invalid HTTP_PORT")
		return nil, e.Wrap("HTTP_PORT", e.ErrIncorrectEnvVariable)
	}

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadPhotoCfg(log logger.Logger) (*PhotoCfg, error) {
	const (
		defaultMaxSize       = 15 << 20
		defaultMaxConcurrent = 4
	)

	maxSize, err := parseIntEnv("PHOTO_MAX_SIZE", defaultMaxSize)
	if err != nil || maxSize <= 0 {
		log.Warnf("invalid PHOTO_MAX_SIZE")
		return nil, e.Wrap("PHOTO_MAX_SIZE", e.ErrIncorrectEnvVariable)
	}

	maxConcurrent, err := parseIntEnv("PHOTO_MAX_CONCURRENT", defaultMaxConcurrent)
	if err != nil || maxConcurrent <= 0 {
		log.Warnf("invalid PHOTO_MAX_CONCURRENT")
		return nil, e.Wrap("PHOTO_MAX_CONCURRENT", e.ErrIncorrectEnvVariable)
	}

	return &PhotoCfg{
		MaxSize:       int64(maxSize),
		MaxConcurrent: maxConcurrent,
	}, nil
}

func loadNotifyCfg() (*NotifyCfg, error) {
	const defaultCapacity = 64

	capacity, err := parseIntEnv("NOTIFY_CAPACITY", defaultCapacity)
	if err != nil || capacity <= 0 {
		return nil, e.Wrap("NOTIFY_CAPACITY", e.ErrIncorrectEnvVariable)
	}

	return &NotifyCfg{Capacity: capacity}, nil
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
