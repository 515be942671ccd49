package questions

import (
	"context"
	"sort"
	"sync"
)

type memoryRow struct {
	q   Question
	seq uint64
}

type MemoryRepo struct {
	mu   sync.RWMutex
	seq  uint64
	rows map[string][]memoryRow // userID -> questions
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{rows: make(map[string][]memoryRow)}
}

func (r *MemoryRepo) CreateBatch(ctx context.Context, qs []Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range qs {
		r.seq++
		r.rows[q.UserID] = append(r.rows[q.UserID], memoryRow{q: q, seq: r.seq})
	}
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	rows := append([]memoryRow(nil), r.rows[userID]...)
	r.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].q.CreatedAt.Equal(rows[j].q.CreatedAt) {
			return rows[i].q.CreatedAt.After(rows[j].q.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.q)
	}
	return out, nil
}

func (r *MemoryRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows[userID]), nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.rows[userID]
	for i, row := range rows {
		if row.q.ID == id {
			r.rows[userID] = append(rows[:i:i], rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepo) DeleteByResume(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := r.rows[userID]
	kept := make([]memoryRow, 0, len(rows))
	for _, row := range rows {
		if row.q.ResumeID != resumeID {
			kept = append(kept, row)
		}
	}
	r.rows[userID] = kept
	return nil
}
