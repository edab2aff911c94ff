package staff

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shoplane/admin-backend/internal/pkg/apperror"
	"github.com/shoplane/admin-backend/internal/pkg/request"
)

// MemoryRepository is an in-memory principal store used for demos and tests.
// It is swappable with the pgx implementation behind the same interface.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Staff
	clock func() time.Time
}

// NewMemoryRepository creates an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:  make(map[string]*Staff),
		clock: time.Now,
	}
}

// Seed inserts accounts directly, bypassing validation. Intended for test
// and demo setup only.
func (r *MemoryRepository) Seed(accounts ...*Staff) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range accounts {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = r.clock()
		}
		cp := *s
		r.byID[cp.ID] = &cp
	}
}

func (r *MemoryRepository) Create(ctx context.Context, s *Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if strings.EqualFold(existing.Email, s.Email) {
			return apperror.Conflict("email already in use")
		}
	}

	s.ID = uuid.NewString()
	s.CreatedAt = r.clock()
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, apperror.NotFound("staff member")
	}
	cp := *s
	return &cp, nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.byID {
		if strings.EqualFold(s.Email, email) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("staff member")
}

func (r *MemoryRepository) List(ctx context.Context, params request.ListParams, role string) ([]*Staff, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*Staff
	for _, s := range r.byID {
		if role != "" && string(s.Role) != role {
			continue
		}
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(s.Email), needle) &&
				!strings.Contains(strings.ToLower(s.DisplayName), needle) {
				continue
			}
		}
		cp := *s
		matched = append(matched, &cp)
	}

	asc := params.SortOrder == "asc"
	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch params.SortBy {
		case "email":
			less = matched[i].Email < matched[j].Email
		case "display_name":
			less = matched[i].DisplayName < matched[j].DisplayName
		default:
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	total := len(matched)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *MemoryRepository) Update(ctx context.Context, s *Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID]; !ok {
		return apperror.NotFound("staff member")
	}
	for id, existing := range r.byID {
		if id != s.ID && strings.EqualFold(existing.Email, s.Email) {
			return apperror.Conflict("email already in use")
		}
	}
	cp := *s
	r.byID[s.ID] = &cp
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperror.NotFound("staff member")
	}
	delete(r.byID, id)
	return nil
}

func (r *MemoryRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return apperror.NotFound("staff member")
	}
	tt := t
	s.LastLoginAt = &tt
	return nil
}
