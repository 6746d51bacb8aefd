package profile

import (
	"context"

	"github.com/google/uuid"
)

// Directory resolves principal ids to "First Last" display names. Ids without
// a profile are left out of the result.
type Directory struct {
	repo Repository
}

func NewDirectory(repo Repository) *Directory {
	return &Directory{repo: repo}
}

func (d *Directory) DisplayNames(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	ids := dedupe(userIDs)
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	list, err := d.repo.FindByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		names[p.UserID] = p.DisplayName()
	}
	return names, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
