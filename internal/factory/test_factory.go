package factory

import (
	"log/slog"
	"time"

	"github.com/ordkamp/ordkamp/internal/dependencies/mocks"
	"github.com/ordkamp/ordkamp/internal/events/sse"
	"github.com/ordkamp/ordkamp/internal/storage/memory"
	"github.com/ordkamp/ordkamp/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The event publisher is real but unconnected; published events go nowhere
// unless a test subscribes.
func NewTestApp() *TestApp {
	return NewTestAppWithLogger(testutil.NopLogger())
}

// NewTestAppWithLogger creates a test App with the given logger
func NewTestAppWithLogger(logger *slog.Logger) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, sse.NewPublisher(logger), mockClock, mockRandom, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small Swedish word list for testing
func (t *TestApp) LoadTestDictionary() {
	t.DictionaryService.LoadWords(TestWords())
}

// TestWords is the word list used by LoadTestDictionary
func TestWords() []string {
	return []string{
		// 2-letter words
		"av", "du", "de", "en", "ej", "gå", "ha", "hö", "is", "ja",
		"ko", "le", "nu", "ny", "om", "os", "på", "rå", "se",
		"si", "så", "tå", "ur", "ut", "vi", "åk", "är", "ö",
		// 3-letter words
		"apa", "arm", "bil", "bok", "bra", "dag", "den", "det", "dit", "ett",
		"fem", "fin", "fot", "får", "ger", "god", "gul", "gås", "har", "hav",
		"hem", "hit", "hon", "hus", "här", "kan", "kol", "kul", "lag",
		"lat", "led", "lek", "lim", "lov", "lus", "mat", "med", "men", "mil",
		"min", "mor", "mus", "mål", "ned", "nej", "nio", "nos", "oss", "par",
		"ras", "ren", "ris", "ror", "ros", "rum", "råg", "sal", "sex", "sil",
		"ske", "sko", "sol", "son", "stå", "syr", "säl", "tak", "tal",
		"tio", "tre", "tro", "tår", "ugn", "ulv", "vad", "var", "vem",
		"vid", "vin", "väg", "vän", "åka", "åra", "äng", "äta", "öga", "öra",
		// longer words
		"anka", "arbete", "barn", "berg", "blomma", "bord", "bror", "brev",
		"dans", "dator", "djur", "dörr", "fisk", "flod", "fågel", "färg",
		"glas", "gräs", "hand", "hund", "häst", "kaka", "katt",
		"katter", "kväll", "lampa", "land", "ljus", "mark", "mask", "mjölk",
		"moln", "natt", "ord", "orm", "papper", "penna", "regn", "resa",
		"rost", "salt", "sand", "sjö", "skog", "skola", "snö",
		"sten", "stol", "strand", "tand", "tavla", "tidning", "träd", "vatten",
		"vind", "våg", "vägg", "värld", "äpple", "över",
	}
}
