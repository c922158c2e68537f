package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"waitwise/internal/data/entity"
	"waitwise/internal/data/state"
	"waitwise/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CenterQuery carries the optional list filters parsed at the handler.
type CenterQuery struct {
	Category string // exact category match, empty for all
	Search   string // case-insensitive substring on name or category
	Sort     string // wait | distance | rating, empty keeps seed order
}

type CenterService interface {
	GetCenters(ctx context.Context, q CenterQuery) ([]response.CenterResponse, error)
	GetCenter(ctx context.Context, id uuid.UUID) (*response.CenterResponse, error)
	GetReviews(ctx context.Context, centerID uuid.UUID) ([]response.ReviewResponse, error)
	GetStats(ctx context.Context) (*response.StatsResponse, error)
}

type centerService struct {
	store *state.Store
	log   *zap.Logger
}

func NewCenterService(store *state.Store, log *zap.Logger) CenterService {
	return &centerService{
		store: store,
		log:   log.With(zap.String("service", "center")),
	}
}

func (s *centerService) GetCenters(ctx context.Context, q CenterQuery) ([]response.CenterResponse, error) {
	centers := s.store.Centers()

	filtered := centers[:0]
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, c := range centers {
		if q.Category != "" && string(c.Category) != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(string(c.Category)), search) {
			continue
		}
		filtered = append(filtered, c)
	}

	switch q.Sort {
	case "wait":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].EstimatedWait() < filtered[j].EstimatedWait()
		})
	case "distance":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DistanceKm < filtered[j].DistanceKm
		})
	case "rating":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	return response.ToCenterResponses(filtered), nil
}

func (s *centerService) GetCenter(ctx context.Context, id uuid.UUID) (*response.CenterResponse, error) {
	c, ok := s.store.CenterByID(id)
	if !ok {
		return nil, fmt.Errorf("center %s not found", id)
	}
	resp := response.ToCenterResponse(c)
	return &resp, nil
}

func (s *centerService) GetReviews(ctx context.Context, centerID uuid.UUID) ([]response.ReviewResponse, error) {
	reviews, err := s.store.ReviewsByCenter(centerID)
	if err != nil {
		return nil, fmt.Errorf("center %s not found", centerID)
	}
	return response.ToReviewResponses(reviews, time.Now()), nil
}

// GetStats aggregates the dashboard counters from the live catalog.
func (s *centerService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	centers := s.store.Centers()

	stats := &response.StatsResponse{}
	totalWait := 0
	for _, c := range centers {
		if c.Status == entity.CenterOpen {
			stats.CentersOpen++
		}
		stats.TotalInQueue += c.Queue
		stats.SlotsLeft += c.SlotsLeft()
		totalWait += c.EstimatedWait()
	}
	if len(centers) > 0 {
		stats.AvgWaitMinutes = totalWait / len(centers)
	}
	return stats, nil
}
