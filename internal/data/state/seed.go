package state

import (
	"time"

	"waitwise/internal/data/entity"
	"waitwise/pkg/utils"

	"github.com/google/uuid"
)

func strPtr(v string) *string { return &v }

// seed populates the catalog, sample reviews and demo accounts. Runs
// once from NewStore before the store is shared, so no locking.
func (s *Store) seed() {
	now := s.now()

	type centerSeed struct {
		name     string
		category entity.CenterCategory
		icon     string
		address  string
		distance float64
		queue    int
		avg      int
		slots    int
		booked   int
		rating   float64
		lat, lng float64
	}

	seeds := []centerSeed{
		{"QuickFix Auto Care", entity.CategoryVehicleRepair, "🔧", "12 Jalan Mekanik, Petaling Jaya", 1.2, 4, 15, 12, 8, 4.6, 3.1073, 101.6067},
		{"MediCare Clinic", entity.CategoryHealthcare, "🏥", "45 Jalan Kesihatan, Subang Jaya", 2.8, 11, 20, 20, 18, 4.8, 3.0495, 101.5854},
		{"CitizenHub JPJ", entity.CategoryGovernmentService, "🏛️", "Wisma Kerajaan, Shah Alam", 5.4, 2, 25, 30, 9, 3.9, 3.0733, 101.5185},
		{"GlowUp Salon & Spa", entity.CategoryPersonalCare, "💇", "8 Jalan Cantik, Damansara", 3.1, 7, 45, 15, 12, 4.9, 3.1579, 101.6302},
		{"TechRescue Electronics", entity.CategoryElectronicsRepair, "📱", "21 Digital Mall, Petaling Jaya", 1.9, 1, 30, 10, 3, 4.4, 3.1048, 101.6419},
	}

	for _, cs := range seeds {
		s.centers = append(s.centers, &entity.Center{
			ID:             uuid.New(),
			Name:           cs.name,
			Category:       cs.category,
			Icon:           cs.icon,
			Address:        cs.address,
			DistanceKm:     cs.distance,
			Queue:          cs.queue,
			AvgServiceTime: cs.avg,
			Slots:          cs.slots,
			SlotsBooked:    cs.booked,
			Status:         entity.CenterOpen,
			Rating:         cs.rating,
			Crowd:          entity.CrowdLevelFor(cs.queue),
			Lat:            cs.lat,
			Lng:            cs.lng,
		})
	}

	type reviewSeed struct {
		center  int
		author  string
		rating  int
		comment string
		age     time.Duration
	}

	reviewSeeds := []reviewSeed{
		{0, "Farah M.", 5, "Fast service, honest pricing. My go-to workshop.", 36 * time.Hour},
		{0, "Daniel W.", 4, "Queue moved quicker than the app estimated.", 5 * 24 * time.Hour},
		{1, "Mei Ling", 5, "Doctor was thorough and the wait estimate was spot on.", 12 * time.Hour},
		{1, "Hafiz R.", 4, "Busy as always but the booking slot held up.", 3 * 24 * time.Hour},
		{2, "Suresh K.", 3, "Renewal done in one visit. Bring your own pen.", 8 * 24 * time.Hour},
		{3, "Aina Z.", 5, "Worth every minute of the wait. Great stylists.", 2 * 24 * time.Hour},
		{4, "Jason L.", 4, "Screen replaced in under an hour.", 26 * time.Hour},
	}

	for _, rs := range reviewSeeds {
		c := s.centers[rs.center]
		s.reviews[c.ID] = append(s.reviews[c.ID], &entity.Review{
			ID:        uuid.New(),
			CenterID:  c.ID,
			Author:    rs.author,
			Rating:    rs.rating,
			Comment:   strPtr(rs.comment),
			CreatedAt: now.Add(-rs.age),
		})
	}

	userHash, _ := utils.HashPassword("demo123")
	adminHash, _ := utils.HashPassword("admin123")
	adminCenter := s.centers[0].ID

	demoUser := &entity.User{
		ID:           uuid.New(),
		Email:        "user@demo.com",
		Name:         "Alex Tan",
		Phone:        strPtr("+60123456789"),
		PasswordHash: userHash,
		Role:         entity.RoleUser,
		CreatedAt:    now,
	}
	demoAdmin := &entity.User{
		ID:           uuid.New(),
		Email:        "admin@demo.com",
		Name:         "Admin Razif",
		PasswordHash: adminHash,
		Role:         entity.RoleAdmin,
		CenterID:     &adminCenter,
		CreatedAt:    now,
	}

	for _, u := range []*entity.User{demoUser, demoAdmin} {
		s.usersByID[u.ID] = u
		s.usersByEmail[u.Email] = u
	}
}

// DefaultCenterID returns the first catalog entry, used as the fallback
// scope for admin accounts created without an assignment.
func (s *Store) DefaultCenterID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.centers[0].ID
}
