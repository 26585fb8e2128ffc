// Package dictionary is the word-validity oracle: a case-insensitive batch
// lookup over the Swedish word list. Entries flagged as inflected
// ("böjning") forms are excluded, since only base forms are playable.
package dictionary

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/ordkamp/ordkamp/internal/model"
	"github.com/ordkamp/ordkamp/internal/storage"
)

// inflectedForm marks word-list entries that are inflections of another
// entry rather than playable base forms.
const inflectedForm = "böjning"

// Service provides dictionary/word validation functionality
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new dictionary service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words from storage. An empty storage
// leaves the service unloaded so a file load can still happen.
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	if len(words) > 0 {
		s.loadWords(words)
	}
	return nil
}

// LoadFromFile loads dictionary words from a file. Each line holds a word,
// optionally followed by whitespace and its grammatical form; lines whose
// form is "böjning" are skipped.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 1 && strings.EqualFold(fields[1], inflectedForm) {
			continue
		}
		words = append(words, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	s.loadWords(words)
	s.logger.Info("dictionary loaded",
		slog.String("path", path),
		slog.Int("words", len(words)),
	)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) {
	s.loadWords(words)
}

// LoadAndStore loads a slice of words and persists them so they survive a
// restart
func (s *Service) LoadAndStore(ctx context.Context, words []string) error {
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}
	s.loadWords(words)
	return nil
}

func (s *Service) loadWords(words []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	for _, word := range words {
		// Store lowercase for case-insensitive matching
		s.words[strings.ToLower(word)] = struct{}{}
	}
	s.loaded = true
}

// Lookup checks a batch of words and returns those not in the dictionary.
// Matching is case-insensitive. An empty result means every word is valid.
func (s *Service) Lookup(ctx context.Context, words []string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, model.ErrDictionaryNotLoaded
	}

	var missing []string
	for _, word := range words {
		if _, ok := s.words[strings.ToLower(word)]; !ok {
			missing = append(missing, word)
		}
	}
	return missing, nil
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Oracle is the lookup interface the move validator depends on
type Oracle interface {
	Lookup(ctx context.Context, words []string) ([]string, error)
}

var _ Oracle = (*Service)(nil)
