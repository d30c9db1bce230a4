package service

import (
	"context"
	"sync"

	"github.com/kapu/character-lookup-go/internal/domain"
	"github.com/kapu/character-lookup-go/internal/util"
	"github.com/kapu/character-lookup-go/pkg/errors"
	"go.uber.org/zap"
)

// SearchResult is the outcome of a successful search.
type SearchResult struct {
	Term      string
	Character *domain.Character
	Cached    bool
}

// LookupService resolves search terms from its history or the remote API and
// owns the session's history.
//
// Only one network search is live at a time: starting another cancels the
// previous request, and a search that lost the race never touches history.
type LookupService struct {
	fetcher CharacterFetcher
	history *domain.History
	logger  *zap.Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func NewLookupService(fetcher CharacterFetcher, logger *zap.Logger) *LookupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LookupService{
		fetcher: fetcher,
		history: domain.NewHistory(),
		logger:  logger,
	}
}

// History returns the session history.
func (s *LookupService) History() *domain.History {
	return s.history
}

// Search normalizes raw and resolves it. It returns a *errors.ValidationError
// for empty input, a *errors.NotFoundError when the API cannot provide the
// record, and errors.ErrSuperseded when a newer search replaced this one.
func (s *LookupService) Search(ctx context.Context, raw string) (*SearchResult, error) {
	term := util.Normalize(raw)
	if term == "" {
		return nil, errors.NewValidationError("empty search term", "term", raw)
	}

	if cached := s.history.FindByName(term); cached != nil {
		s.logger.Debug("Character served from history", zap.String("term", term))
		return &SearchResult{Term: term, Character: cached, Cached: true}, nil
	}

	reqCtx, generation := s.begin(ctx)
	defer s.finish(generation)

	character, err := s.fetcher.FetchCharacter(reqCtx, term)
	if err != nil {
		if s.superseded(generation) {
			return nil, errors.ErrSuperseded
		}
		s.logger.Warn("Character lookup failed",
			zap.String("term", term),
			zap.Error(err),
		)
		return nil, errors.NewNotFoundError(term, err)
	}

	if !s.commit(generation, character) {
		s.logger.Debug("Discarding superseded search result", zap.String("term", term))
		return nil, errors.ErrSuperseded
	}

	s.logger.Info("Character fetched",
		zap.String("term", term),
		zap.String("name", character.Name),
		zap.Int("history_size", s.history.Len()),
	)
	return &SearchResult{Term: term, Character: character}, nil
}

func (s *LookupService) begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	reqCtx, cancel := context.WithCancel(ctx)
	s.generation++
	s.cancel = cancel
	return reqCtx, s.generation
}

func (s *LookupService) finish(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation == generation && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *LookupService) superseded(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation != generation
}

// commit prepends c if generation is still the latest search.
func (s *LookupService) commit(generation uint64, c *domain.Character) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		return false
	}
	s.history.Prepend(c)
	return true
}
