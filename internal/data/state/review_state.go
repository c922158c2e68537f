package state

import (
	"waitwise/internal/data/entity"

	"github.com/google/uuid"
)

// AddReview prepends a review to the center's list. The aggregate
// rating shown on the center is not recomputed from reviews.
func (s *Store) AddReview(centerID uuid.UUID, author string, rating int, comment *string) (entity.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.centerLocked(centerID)
	if c == nil {
		return entity.Review{}, ErrCenterNotFound
	}

	r := &entity.Review{
		ID:        uuid.New(),
		CenterID:  c.ID,
		Author:    author,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: s.now(),
	}
	s.reviews[c.ID] = append([]*entity.Review{r}, s.reviews[c.ID]...)
	return *r, nil
}

// ReviewsByCenter returns the center's reviews, newest first.
func (s *Store) ReviewsByCenter(centerID uuid.UUID) ([]entity.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.centerLocked(centerID) == nil {
		return nil, ErrCenterNotFound
	}

	out := make([]entity.Review, 0, len(s.reviews[centerID]))
	for _, r := range s.reviews[centerID] {
		out = append(out, *r)
	}
	return out, nil
}
