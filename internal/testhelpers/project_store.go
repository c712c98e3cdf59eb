package testhelpers

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ai-website-generator/backend/internal/projects/domain"
)

// MemoryProjectStore is an in-memory project store with the same ordering, id and
// error semantics as the MongoDB repository. Set Err to make every call fail.
type MemoryProjectStore struct {
	mu       sync.Mutex
	projects []domain.Project // insertion order
	calls    int

	Err error
}

func NewMemoryProjectStore() *MemoryProjectStore {
	return &MemoryProjectStore{}
}

// Calls reports how many store operations were attempted.
func (s *MemoryProjectStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *MemoryProjectStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.projects)
}

func (s *MemoryProjectStore) Insert(_ context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return s.Err
	}

	p.ID = primitive.NewObjectID().Hex()
	s.projects = append(s.projects, *p)
	return nil
}

func (s *MemoryProjectStore) List(_ context.Context, limit int) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]domain.Project, len(s.projects))
	for i := range s.projects {
		// newest inserted first so equal timestamps keep reverse insertion order
		out[i] = s.projects[len(s.projects)-1-i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryProjectStore) FindByID(_ context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return nil, s.Err
	}

	for _, p := range s.projects {
		if p.ID == oid.Hex() {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryProjectStore) Delete(_ context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return 0, s.Err
	}

	for i, p := range s.projects {
		if p.ID == oid.Hex() {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
