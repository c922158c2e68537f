package usecase

import (
	"context"
	"testing"

	"waitwise/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	quickfix := env.centerByName(t, "QuickFix Auto Care")

	comment := "Smooth visit."
	review, err := env.service.Review.CreateReview(ctx, quickfix.ID, env.user.ID, request.CreateReviewRequest{
		Rating:  5,
		Comment: &comment,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex Tan", review.Author, "author comes from the signed-in account")
	assert.Equal(t, 5, review.Rating)

	reviews, err := env.service.Center.GetReviews(ctx, quickfix.ID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, reviews[0].ID, "newest first")
}

func TestCreateReviewWithoutComment(t *testing.T) {
	env := newTestEnv(t)
	quickfix := env.centerByName(t, "QuickFix Auto Care")

	review, err := env.service.Review.CreateReview(context.Background(), quickfix.ID, env.user.ID, request.CreateReviewRequest{
		Rating: 3,
	})
	require.NoError(t, err)
	assert.Nil(t, review.Comment)
}

func TestCreateReviewErrors(t *testing.T) {
	env := newTestEnv(t)
	quickfix := env.centerByName(t, "QuickFix Auto Care")

	_, err := env.service.Review.CreateReview(context.Background(), uuid.New(), env.user.ID, request.CreateReviewRequest{
		Rating: 4,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = env.service.Review.CreateReview(context.Background(), quickfix.ID, uuid.New(), request.CreateReviewRequest{
		Rating: 4,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}
