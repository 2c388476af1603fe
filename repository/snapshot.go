package repository

import (
	"slices"

	"github.com/ayoisaiah/doze/internal/models"
)

// snapshot is an immutable view of every committed session. A new snapshot
// is built for each mutation and published only once it is complete.
type snapshot struct {
	byID    map[int64]int
	ordered []models.Session
}

func newSnapshot(sessions []models.Session) *snapshot {
	ordered := slices.Clone(sessions)

	slices.SortFunc(ordered, func(a, b models.Session) int {
		switch {
		case models.Less(&a, &b):
			return -1
		case models.Less(&b, &a):
			return 1
		default:
			return 0
		}
	})

	byID := make(map[int64]int, len(ordered))
	for i := range ordered {
		byID[ordered[i].ID] = i
	}

	return &snapshot{byID: byID, ordered: ordered}
}

func (s *snapshot) get(id int64) (models.Session, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Session{}, false
	}

	return s.ordered[i], true
}

func (s *snapshot) with(sess models.Session) *snapshot {
	next := make([]models.Session, 0, len(s.ordered)+1)

	for i := range s.ordered {
		if s.ordered[i].ID != sess.ID {
			next = append(next, s.ordered[i])
		}
	}

	return newSnapshot(append(next, sess))
}

func (s *snapshot) without(id int64) *snapshot {
	next := make([]models.Session, 0, len(s.ordered))

	for i := range s.ordered {
		if s.ordered[i].ID != id {
			next = append(next, s.ordered[i])
		}
	}

	return newSnapshot(next)
}
