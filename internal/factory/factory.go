package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ordkamp/ordkamp/internal/dependencies/clock"
	"github.com/ordkamp/ordkamp/internal/dependencies/random"
	"github.com/ordkamp/ordkamp/internal/events"
	"github.com/ordkamp/ordkamp/internal/events/sse"
	"github.com/ordkamp/ordkamp/internal/services/dictionary"
	"github.com/ordkamp/ordkamp/internal/services/game"
	"github.com/ordkamp/ordkamp/internal/storage"
	"github.com/ordkamp/ordkamp/internal/storage/memory"
	redisstorage "github.com/ordkamp/ordkamp/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	GameController    *game.Controller
	EventPublisher    *sse.Publisher
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()
	publisher := sse.NewPublisher(logger)

	return newWithDependencies(store, publisher, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, publisher *sse.Publisher, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	dictService := dictionary.New(store, logger)

	var pub events.Publisher = events.NopPublisher{}
	if publisher != nil {
		pub = publisher
	}
	gameController := game.NewController(store, dictService, pub, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		GameController:    gameController,
		EventPublisher:    publisher,
	}
}
