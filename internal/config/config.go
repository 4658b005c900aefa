package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath — путь к конфигу, если CONFIG_PATH не задан
const DefaultPath = "config/config.yaml"

// Config определяет структуру конфигурации всего приложения целиком
// на результаты запросов конфигурация не влияет, только на то, откуда читать и куда писать
type Config struct {
	Logger   `yaml:"logger"`
	Seed     `yaml:"seed"`
	Postgres `yaml:"postgres"`
	SQLite   `yaml:"sqlite"`
	Report   `yaml:"report"`
	Kafka    `yaml:"kafka"`
}

// Logger содержит конфигурацию для логгера
type Logger struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Seed определяет источник исходных данных
// для file пустой path означает встроенный набор данных
type Seed struct {
	Source string `yaml:"source" validate:"oneof=file postgres sqlite"`
	Path   string `yaml:"path"`
}

// Postgres содержит конфигурацию для подключения к базе данных
type Postgres struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	DBName   string `yaml:"db_name"`
	SSLMode  string `yaml:"ssl_mode"`
}

// SQLite содержит путь к файлу базы
type SQLite struct {
	Path string `yaml:"path"`
}

// Report определяет, куда печатаются результаты
type Report struct {
	Sink string `yaml:"sink" validate:"oneof=log stdout kafka"`
}

// Kafka содержит конфигурацию для публикации отчёта в кафку
type Kafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

var validate = validator.New()

// Load загружает и проверяет конфигурацию из файла по указанному пути
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	if configPath == "" {
		return nil, fmt.Errorf("%s: config path is empty", op)
	}

	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read config file: %w", op, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal config: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cfg, nil
}

// MustLoad загружает конфигурацию из файла по указанному пути
// в случае ошибки программа завершается с фатальной ошибкой
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Path возвращает путь к конфигу из CONFIG_PATH или путь по умолчанию
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Default — конфигурация, с которой сервис работает без файла:
// встроенные данные и вывод в лог
func Default() *Config {
	return &Config{
		Logger: Logger{Level: "INFO", Format: "text"},
		Seed:   Seed{Source: "file"},
		SQLite: SQLite{Path: "data/streamapi.db"},
		Report: Report{Sink: "log"},
	}
}

// Validate проверяет значения перечислений и связанные поля
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Report.Sink == "kafka" && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		return errors.New("kafka sink requires brokers and topic")
	}
	return nil
}
