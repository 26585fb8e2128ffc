package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ordkamp/ordkamp/internal/model"
	"github.com/ordkamp/ordkamp/internal/storage/memory"
	"github.com/ordkamp/ordkamp/internal/testutil"
)

type DictionarySuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestDictionarySuite(t *testing.T) {
	suite.Run(t, new(DictionarySuite))
}

func (s *DictionarySuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *DictionarySuite) TestLookupBeforeLoadFails() {
	_, err := s.service.Lookup(s.ctx, []string{"katt"})
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *DictionarySuite) TestLookupIsCaseInsensitive() {
	s.service.LoadWords([]string{"katt", "SOL"})

	missing, err := s.service.Lookup(s.ctx, []string{"KATT", "sol", "Katt"})
	s.Require().NoError(err)
	s.Empty(missing)
}

func (s *DictionarySuite) TestLookupReportsAllMissingWords() {
	s.service.LoadWords([]string{"katt"})

	missing, err := s.service.Lookup(s.ctx, []string{"KATT", "QX", "ZZZ"})
	s.Require().NoError(err)
	s.Equal([]string{"QX", "ZZZ"}, missing)
}

func (s *DictionarySuite) TestLoadFromFileSkipsInflectedForms() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	content := "katt substantiv\nkatter böjning\nsol\n\nmjölk substantiv\n"
	s.Require().NoError(os.WriteFile(path, []byte(content), 0644))

	s.Require().NoError(s.service.LoadFromFile(s.ctx, path))

	s.True(s.service.IsLoaded())
	s.Equal(3, s.service.WordCount())

	missing, err := s.service.Lookup(s.ctx, []string{"katt", "sol", "mjölk"})
	s.Require().NoError(err)
	s.Empty(missing)

	missing, err = s.service.Lookup(s.ctx, []string{"katter"})
	s.Require().NoError(err)
	s.Equal([]string{"katter"}, missing)
}

func (s *DictionarySuite) TestLoadFromFilePersistsToStorage() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("katt\nsol\n"), 0644))
	s.Require().NoError(s.service.LoadFromFile(s.ctx, path))

	// A fresh service against the same storage sees the words
	fresh := New(s.storage, testutil.NopLogger())
	s.Require().NoError(fresh.LoadFromStorage(s.ctx))
	s.True(fresh.IsLoaded())
	s.Equal(2, fresh.WordCount())
}

func (s *DictionarySuite) TestLoadAndStorePersists() {
	s.Require().NoError(s.service.LoadAndStore(s.ctx, []string{"katt", "sol", "hund"}))

	words, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Len(words, 3)
	s.Equal(3, s.service.WordCount())
}
