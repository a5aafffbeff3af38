package sandbox

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mind-engage/mindengage-sandbox/internal/evaluation"
)

var (
	ErrInteractionNotFound = errors.New("interaction not found")
	ErrAttemptNotFound     = errors.New("attempt not found")
)

// Store persists interactions and scored attempts.
type Store interface {
	PutInteraction(in evaluation.Interaction) error
	GetInteraction(id string) (evaluation.Interaction, error)
	SaveAttempt(a Attempt) error
	GetAttempt(id string) (Attempt, error)
	ListAttempts(interactionID, userID string) ([]Attempt, error)
}

// Service runs the evaluation engine over stored interactions and persists
// the outcome. The engine itself stays pure; all I/O lives here.
type Service struct {
	store Store
	eval  *evaluation.Evaluator
}

func NewService(store Store, eval *evaluation.Evaluator) *Service {
	return &Service{store: store, eval: eval}
}

func (s *Service) Store() Store { return s.store }

// Baseline returns the expected completion time for an interaction in ms.
func (s *Service) Baseline(interactionID string) (int64, error) {
	in, err := s.store.GetInteraction(interactionID)
	if err != nil {
		return 0, err
	}
	return s.eval.EstimateBaseline(in).Milliseconds(), nil
}

// Submit scores a submission, derives its friction rating against the
// interaction's baseline, persists the attempt and returns it.
func (s *Service) Submit(interactionID, userID string, sub Submission) (Attempt, error) {
	in, err := s.store.GetInteraction(interactionID)
	if err != nil {
		return Attempt{}, err
	}
	elapsed := time.Duration(sub.TimeToCompleteMs) * time.Millisecond
	res := s.eval.Evaluate(in, sub.UserState, sub.AttemptCount, sub.HintsUsed, elapsed)
	rating := s.eval.DeriveRating(res, s.eval.EstimateBaseline(in))

	a := Attempt{
		ID:               uuid.NewString(),
		InteractionID:    in.ID,
		ConceptID:        in.ConceptID,
		UserID:           userID,
		UserState:        sub.UserState,
		Score:            res.Score,
		Passed:           res.Passed,
		AttemptCount:     res.AttemptCount,
		HintsUsed:        res.HintsUsed,
		TimeToCompleteMs: res.TimeToCompleteMs,
		Rating:           rating,
		Feedback:         evaluation.FeedbackText(res.Feedback),
		ElementResults:   res.ElementResults,
		CreatedAt:        time.Now().Unix(),
	}
	if err := s.store.SaveAttempt(a); err != nil {
		return Attempt{}, err
	}
	return a, nil
}

// --- in-memory store (tests, offline dev) ---

type memoryStore struct {
	mu           sync.RWMutex
	interactions map[string]evaluation.Interaction
	attempts     map[string]Attempt
}

func NewInMemoryStore() Store {
	return &memoryStore{
		interactions: map[string]evaluation.Interaction{},
		attempts:     map[string]Attempt{},
	}
}

func (m *memoryStore) PutInteraction(in evaluation.Interaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactions[in.ID] = in
	return nil
}

func (m *memoryStore) GetInteraction(id string) (evaluation.Interaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	in, ok := m.interactions[id]
	if !ok {
		return evaluation.Interaction{}, ErrInteractionNotFound
	}
	return in, nil
}

func (m *memoryStore) SaveAttempt(a Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[a.ID] = a
	return nil
}

func (m *memoryStore) GetAttempt(id string) (Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.attempts[id]
	if !ok {
		return Attempt{}, ErrAttemptNotFound
	}
	return a, nil
}

func (m *memoryStore) ListAttempts(interactionID, userID string) ([]Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Attempt{}
	for _, a := range m.attempts {
		if a.InteractionID != interactionID {
			continue
		}
		if userID != "" && a.UserID != userID {
			continue
		}
		out = append(out, a)
	}
	// newest first; id tiebreak keeps the order stable
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
