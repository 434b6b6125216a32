package hint

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"gitlab.com/elp-2025.net/internal/core/services/generation"
	"gitlab.com/elp-2025.net/internal/domain"
	"gitlab.com/elp-2025.net/internal/static/errs"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...interface{})  {}
func (noopLogger) Error(msg string, args ...interface{}) {}
func (noopLogger) Debug(msg string, args ...interface{}) {}
func (noopLogger) Warn(msg string, args ...interface{})  {}

// memoryHintRepo is an in-memory HintRepository.
type memoryHintRepo struct {
	mu      sync.Mutex
	sets    map[string]*domain.HintSet
	saveErr error
	getErr  error
}

func newMemoryHintRepo() *memoryHintRepo {
	return &memoryHintRepo{sets: make(map[string]*domain.HintSet)}
}

func (r *memoryHintRepo) GetHintSet(ctx context.Context, questionID string) (*domain.HintSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.sets[questionID], nil
}

func (r *memoryHintRepo) SaveHintSet(ctx context.Context, set *domain.HintSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.sets[set.QuestionID] = set
	return nil
}

// countingGenerator serves canned hints and counts generation calls.
type countingGenerator struct {
	generation.IGenerationService
	calls int32
	hints []string
	err   error
}

func (g *countingGenerator) GenerateHints(ctx context.Context, questionID, questionContext string) ([]string, error) {
	atomic.AddInt32(&g.calls, 1)
	if g.err != nil {
		return nil, g.err
	}
	return g.hints, nil
}

func threeHints() []string {
	return []string{"Consider the data structure.", "A map helps here.", "Track value to index while scanning."}
}

func TestGenerateHintsGeneratesOnceThenServesStored(t *testing.T) {
	repo := newMemoryHintRepo()
	gen := &countingGenerator{hints: threeHints()}
	svc := NewHintService(repo, nil, gen, noopLogger{})

	first, err := svc.GenerateHints(context.Background(), "q1", "Two Sum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Hints) != domain.HintsPerQuestion {
		t.Fatalf("hint count = %d, want %d", len(first.Hints), domain.HintsPerQuestion)
	}

	second, err := svc.GenerateHints(context.Background(), "q1", "Two Sum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Hints[0] != first.Hints[0] {
		t.Error("second call returned different hints")
	}
	if got := atomic.LoadInt32(&gen.calls); got != 1 {
		t.Errorf("generation calls = %d, want 1", got)
	}
}

func TestGenerateHintsConcurrentFirstRequestsShareOneCall(t *testing.T) {
	repo := newMemoryHintRepo()
	gen := &countingGenerator{hints: threeHints()}
	svc := NewHintService(repo, nil, gen, noopLogger{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set, err := svc.GenerateHints(context.Background(), "q1", "Two Sum")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if !set.Complete() {
				t.Error("incomplete hint set returned")
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&gen.calls); got != 1 {
		t.Errorf("generation calls = %d, want 1", got)
	}
}

func TestGenerateHintsDifferentQuestionsDoNotBlockEachOther(t *testing.T) {
	repo := newMemoryHintRepo()
	gen := &countingGenerator{hints: threeHints()}
	svc := NewHintService(repo, nil, gen, noopLogger{})

	var wg sync.WaitGroup
	for _, id := range []string{"q1", "q2", "q3"} {
		wg.Add(1)
		go func(questionID string) {
			defer wg.Done()
			if _, err := svc.GenerateHints(context.Background(), questionID, "ctx"); err != nil {
				t.Errorf("unexpected error for %s: %v", questionID, err)
			}
		}(id)
	}
	wg.Wait()

	if got := atomic.LoadInt32(&gen.calls); got != 3 {
		t.Errorf("generation calls = %d, want 3", got)
	}
}

func TestGenerateHintsNothingStoredOnGenerationFailure(t *testing.T) {
	repo := newMemoryHintRepo()
	gen := &countingGenerator{err: errors.New("model unavailable")}
	svc := NewHintService(repo, nil, gen, noopLogger{})

	if _, err := svc.GenerateHints(context.Background(), "q1", "ctx"); err == nil {
		t.Fatal("expected an error")
	}
	if set := repo.sets["q1"]; set != nil {
		t.Errorf("partial state persisted after failure: %+v", set)
	}

	// The next request retries and succeeds.
	gen.err = nil
	gen.hints = threeHints()
	set, err := svc.GenerateHints(context.Background(), "q1", "ctx")
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if !set.Complete() {
		t.Error("retry returned an incomplete set")
	}
}

func TestGenerateHintsNothingCachedOnPersistFailure(t *testing.T) {
	repo := newMemoryHintRepo()
	repo.saveErr = errors.New("db down")
	gen := &countingGenerator{hints: threeHints()}
	svc := NewHintService(repo, nil, gen, noopLogger{})

	if _, err := svc.GenerateHints(context.Background(), "q1", "ctx"); err == nil {
		t.Fatal("expected persistence failure to propagate")
	}
	if set := repo.sets["q1"]; set != nil {
		t.Errorf("set stored despite save error: %+v", set)
	}
}

// memoryHintCache is an in-memory HintCache that counts hits.
type memoryHintCache struct {
	mu   sync.Mutex
	sets map[string]*domain.HintSet
	gets int
}

func newMemoryHintCache() *memoryHintCache {
	return &memoryHintCache{sets: make(map[string]*domain.HintSet)}
}

func (c *memoryHintCache) GetHintSet(ctx context.Context, questionID string) (*domain.HintSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	return c.sets[questionID], nil
}

func (c *memoryHintCache) SetHintSet(ctx context.Context, set *domain.HintSet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets[set.QuestionID] = set
	return nil
}

func TestGenerateHintsFillsCacheAfterGeneration(t *testing.T) {
	repo := newMemoryHintRepo()
	cache := newMemoryHintCache()
	gen := &countingGenerator{hints: threeHints()}
	svc := NewHintService(repo, cache, gen, noopLogger{})

	if _, err := svc.GenerateHints(context.Background(), "q1", "ctx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cache.sets["q1"].Complete() {
		t.Error("cache not filled after generation")
	}
}

func TestGetHintIsOneIndexed(t *testing.T) {
	repo := newMemoryHintRepo()
	gen := &countingGenerator{hints: threeHints()}
	svc := NewHintService(repo, nil, gen, noopLogger{})

	if _, err := svc.GenerateHints(context.Background(), "q1", "ctx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hints := threeHints()
	for n := 1; n <= domain.HintsPerQuestion; n++ {
		got, err := svc.GetHint(context.Background(), "q1", n)
		if err != nil {
			t.Fatalf("GetHint(%d): %v", n, err)
		}
		if got != hints[n-1] {
			t.Errorf("GetHint(%d) = %q, want %q", n, got, hints[n-1])
		}
	}

	for _, n := range []int{0, -1, 4} {
		if _, err := svc.GetHint(context.Background(), "q1", n); !errors.Is(err, errs.ErrHintNotFound) {
			t.Errorf("GetHint(%d): expected ErrHintNotFound, got %v", n, err)
		}
	}
}

func TestGetHintForUnknownQuestion(t *testing.T) {
	svc := NewHintService(newMemoryHintRepo(), nil, &countingGenerator{}, noopLogger{})

	if _, err := svc.GetHint(context.Background(), "missing", 1); !errors.Is(err, errs.ErrHintNotFound) {
		t.Fatalf("expected ErrHintNotFound, got %v", err)
	}
}

func TestCanRevealSolution(t *testing.T) {
	repo := newMemoryHintRepo()
	gen := &countingGenerator{hints: threeHints()}
	svc := NewHintService(repo, nil, gen, noopLogger{})

	// No hint set yet.
	ok, err := svc.CanRevealSolution(context.Background(), "q1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("reveal allowed before any hints exist")
	}

	if _, err := svc.GenerateHints(context.Background(), "q1", "ctx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		consumed int
		want     bool
	}{
		{0, false},
		{2, false},
		{3, true},
		{4, true},
	}
	for _, tt := range tests {
		ok, err := svc.CanRevealSolution(context.Background(), "q1", tt.consumed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok != tt.want {
			t.Errorf("CanRevealSolution(consumed=%d) = %v, want %v", tt.consumed, ok, tt.want)
		}
	}
}
