package jobroles

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo lists roles by title, like PGRepo.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []string
	roles map[string]JobRole
}

func NewMemoryRepo(seed []JobRole) *MemoryRepo {
	r := &MemoryRepo{roles: make(map[string]JobRole)}
	_ = r.Upsert(context.Background(), seed)
	return r
}

func (r *MemoryRepo) List(ctx context.Context) ([]JobRole, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]JobRole, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.roles[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *MemoryRepo) Upsert(ctx context.Context, roles []JobRole) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, role := range roles {
		if role.ID == "" {
			role.ID = RoleID(role.Title)
		}
		if _, ok := r.roles[role.ID]; !ok {
			r.order = append(r.order, role.ID)
		}
		r.roles[role.ID] = role
	}
	return nil
}
