package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"waitwise/internal/data/state"
	"waitwise/internal/dto/request"
	"waitwise/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, centerID, userID uuid.UUID, req request.CreateReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	store *state.Store
	log   *zap.Logger
}

func NewReviewService(store *state.Store, log *zap.Logger) ReviewService {
	return &reviewService{
		store: store,
		log:   log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, centerID, userID uuid.UUID, req request.CreateReviewRequest) (*response.ReviewResponse, error) {
	user, ok := s.store.UserByID(userID)
	if !ok {
		return nil, errors.New("unauthorized")
	}

	review, err := s.store.AddReview(centerID, user.Name, req.Rating, req.Comment)
	if err != nil {
		return nil, fmt.Errorf("center %s not found", centerID)
	}

	s.log.Info("review added",
		zap.String("center_id", centerID.String()),
		zap.Int("rating", review.Rating))
	resp := response.ToReviewResponse(review, time.Now())
	return &resp, nil
}
