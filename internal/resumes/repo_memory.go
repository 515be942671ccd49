package resumes

import (
	"context"
	"sort"
	"sync"
)

type memoryRow struct {
	resume Resume
	seq    uint64
}

// MemoryRepo keeps resumes in process memory.
type MemoryRepo struct {
	mu   sync.RWMutex
	seq  uint64
	rows map[string]memoryRow // id -> row
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{rows: make(map[string]memoryRow)}
}

func (r *MemoryRepo) Create(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.rows[res.ID] = memoryRow{resume: clone(res), seq: r.seq}
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	rows := make([]memoryRow, 0)
	for _, row := range r.rows {
		if row.resume.UserID == userID {
			rows = append(rows, row)
		}
	}
	r.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].resume.CreatedAt.Equal(rows[j].resume.CreatedAt) {
			return rows[i].resume.CreatedAt.After(rows[j].resume.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]Resume, 0, len(rows))
	for _, row := range rows {
		out = append(out, clone(row.resume))
	}
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok || row.resume.UserID != userID {
		return Resume{}, ErrNotFound
	}
	return clone(row.resume), nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.resume.UserID != userID {
		return ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func clone(res Resume) Resume {
	res.TechnicalSkills = append([]string{}, res.TechnicalSkills...)
	res.SoftSkills = append([]string{}, res.SoftSkills...)
	res.ExtractedSkills = append([]string{}, res.ExtractedSkills...)
	return res
}
