package score

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
)

// tableSize is the number of runs kept in memory for the high score table
const tableSize = 10

// Service owns the score store, writing finished runs off the game loop
// Store failures disable persistence without stopping the game
type Service struct {
	path  string
	store *Store

	best atomic.Int64

	mu  sync.Mutex
	top []engine.ScoreEntry // Highest first, at most tableSize rows

	ch   chan Entry
	wg   sync.WaitGroup
	once sync.Once
}

// NewService creates a score service for the database at path, empty disables persistence
func NewService(path string) *Service {
	return &Service{
		path: path,
		ch:   make(chan Entry, 16),
	}
}

// Name implements services.Service
func (s *Service) Name() string {
	return "score"
}

// Dependencies implements services.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init opens the database and bridges the ScoreResource into the world
func (s *Service) Init(world any) error {
	w, ok := world.(*engine.World)
	if !ok {
		return fmt.Errorf("score service: unexpected world type %T", world)
	}

	if s.path != "" {
		store, err := Open(s.path)
		if err != nil {
			log.Printf("score persistence disabled: %v", err)
		} else {
			s.store = store
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			best, err := store.Best(ctx)
			cancel()
			if err != nil {
				log.Printf("load best score: %v", err)
			}
			s.best.Store(int64(best))
			s.loadTable()
		}
	}

	engine.AddResource(w.ResourceStore, &engine.ScoreResource{Keeper: s})
	return nil
}

// Start launches the writer goroutine
func (s *Service) Start() error {
	s.wg.Add(1)
	core.Go(func() {
		defer s.wg.Done()
		s.loop()
	})
	return nil
}

// Stop drains pending writes and closes the database
func (s *Service) Stop() error {
	s.once.Do(func() {
		close(s.ch)
	})
	s.wg.Wait()
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// Submit queues a finished run; runs are dropped when the queue is full
func (s *Service) Submit(runID string, score, level int, startedAt time.Time) {
	for {
		cur := s.best.Load()
		if int64(score) <= cur || s.best.CompareAndSwap(cur, int64(score)) {
			break
		}
	}
	s.remember(engine.ScoreEntry{Score: score, Level: level})

	id, err := uuid.Parse(runID)
	if err != nil {
		id = uuid.New()
	}

	select {
	case s.ch <- Entry{RunID: id, Score: score, Level: level, StartedAt: startedAt, RecordedAt: time.Now()}:
	default:
		log.Printf("score queue full, dropping run %s", id)
	}
}

// Best returns the best score seen, persisted or submitted this session
func (s *Service) Best() int {
	return int(s.best.Load())
}

// Top returns up to n runs of the table, persisted or submitted this session, highest first
func (s *Service) Top(n int) []engine.ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.top[:min(n, len(s.top))])
}

func (s *Service) loadTable() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	entries, err := s.store.Top(ctx, tableSize)
	if err != nil {
		log.Printf("load score table: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.top = s.top[:0]
	for _, e := range entries {
		s.top = append(s.top, engine.ScoreEntry{Score: e.Score, Level: e.Level})
	}
}

// remember inserts a run after any equal scores, keeping the table sorted and bounded
func (s *Service) remember(entry engine.ScoreEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := slices.IndexFunc(s.top, func(e engine.ScoreEntry) bool { return e.Score < entry.Score })
	if pos < 0 {
		pos = len(s.top)
	}
	if pos >= tableSize {
		return
	}
	s.top = slices.Insert(s.top, pos, entry)
	if len(s.top) > tableSize {
		s.top = s.top[:tableSize]
	}
}

func (s *Service) loop() {
	for e := range s.ch {
		if s.store == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := s.store.Record(ctx, e); err != nil {
			log.Printf("score: %v", err)
		}
		cancel()
	}
}
