package matching

import (
	"context"
	"sort"
	"sync"
)

type memoryRow struct {
	match JobMatch
	seq   uint64
}

type MemoryRepo struct {
	mu   sync.RWMutex
	seq  uint64
	rows map[string][]memoryRow // userID -> matches
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{rows: make(map[string][]memoryRow)}
}

func (r *MemoryRepo) ReplaceForResume(ctx context.Context, userID, resumeID string, matches []JobMatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.withoutResume(userID, resumeID)
	for _, m := range matches {
		r.seq++
		m.JobRole = nil
		kept = append(kept, memoryRow{match: m, seq: r.seq})
	}
	r.rows[userID] = kept
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]JobMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	rows := append([]memoryRow(nil), r.rows[userID]...)
	r.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].match.CreatedAt.Equal(rows[j].match.CreatedAt) {
			return rows[i].match.CreatedAt.After(rows[j].match.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]JobMatch, 0, len(rows))
	for _, row := range rows {
		m := row.match
		m.MissingSkills = append([]string{}, m.MissingSkills...)
		out = append(out, m)
	}
	return out, nil
}

func (r *MemoryRepo) DeleteByResume(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[userID] = r.withoutResume(userID, resumeID)
	return nil
}

func (r *MemoryRepo) withoutResume(userID, resumeID string) []memoryRow {
	existing := r.rows[userID]
	kept := make([]memoryRow, 0, len(existing))
	for _, row := range existing {
		if row.match.ResumeID != resumeID {
			kept = append(kept, row)
		}
	}
	return kept
}
