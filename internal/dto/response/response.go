package response

import (
	"fmt"
	"time"

	"waitwise/internal/data/entity"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
	CenterID *string `json:"center_id,omitempty"`
}

type CenterResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Icon          string  `json:"icon"`
	Address       string  `json:"address"`
	DistanceKm    float64 `json:"distance_km"`
	Queue         int     `json:"queue"`
	WaitMinutes   int     `json:"wait_minutes"`
	WaitLabel     string  `json:"wait_label"`
	WaitSeverity  string  `json:"wait_severity"`
	Crowd         string  `json:"crowd"`
	Slots         int     `json:"slots"`
	SlotsBooked   int     `json:"slots_booked"`
	SlotsLeft     int     `json:"slots_left"`
	Status        string  `json:"status"`
	Rating        float64 `json:"rating"`
	AvgServiceMin int     `json:"avg_service_minutes"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}

type StatsResponse struct {
	CentersOpen    int `json:"centers_open"`
	TotalInQueue   int `json:"total_in_queue"`
	AvgWaitMinutes int `json:"avg_wait_minutes"`
	SlotsLeft      int `json:"slots_left"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	CenterID      string    `json:"center_id"`
	CenterName    string    `json:"center_name"`
	CenterIcon    string    `json:"center_icon"`
	Slot          string    `json:"slot"`
	BookedAt      time.Time `json:"booked_at"`
	WaitAtBooking int       `json:"wait_at_booking"`
	WaitLabel     string    `json:"wait_label"`
	Status        string    `json:"status"`
}

type ReviewResponse struct {
	ID        string  `json:"id"`
	Author    string  `json:"author"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
	CreatedAt string  `json:"created_at"`
	Age       string  `json:"age"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Icon      string `json:"icon"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
	Age       string `json:"age"`
	Read      bool   `json:"read"`
}

type InboxResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

type PreferencesResponse struct {
	SlotConfirmed    bool `json:"slotConfirmed"`
	QueueAlmostDone  bool `json:"queueAlmostDone"`
	CenterStatus     bool `json:"centerStatus"`
	WaitThreshold    bool `json:"waitThreshold"`
	ThresholdMinutes int  `json:"threshold_minutes"`
}

func ToUserResponse(u entity.User) UserResponse {
	resp := UserResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
	if u.CenterID != nil {
		id := u.CenterID.String()
		resp.CenterID = &id
	}
	return resp
}

func ToCenterResponse(c entity.Center) CenterResponse {
	wait := c.EstimatedWait()
	return CenterResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Category:      string(c.Category),
		Icon:          c.Icon,
		Address:       c.Address,
		DistanceKm:    c.DistanceKm,
		Queue:         c.Queue,
		WaitMinutes:   wait,
		WaitLabel:     entity.FormatWait(wait),
		WaitSeverity:  string(entity.WaitSeverityFor(wait)),
		Crowd:         string(c.Crowd),
		Slots:         c.Slots,
		SlotsBooked:   c.SlotsBooked,
		SlotsLeft:     c.SlotsLeft(),
		Status:        string(c.Status),
		Rating:        c.Rating,
		AvgServiceMin: c.AvgServiceTime,
		Lat:           c.Lat,
		Lng:           c.Lng,
	}
}

func ToCenterResponses(centers []entity.Center) []CenterResponse {
	out := make([]CenterResponse, 0, len(centers))
	for _, c := range centers {
		out = append(out, ToCenterResponse(c))
	}
	return out
}

func ToBookingResponse(b entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID.String(),
		CenterID:      b.CenterID.String(),
		CenterName:    b.CenterName,
		CenterIcon:    b.CenterIcon,
		Slot:          b.Slot,
		BookedAt:      b.BookedAt,
		WaitAtBooking: b.WaitAtBooking,
		WaitLabel:     entity.FormatWait(b.WaitAtBooking),
		Status:        string(b.Status),
	}
}

func ToBookingResponses(bookings []entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingResponse(b))
	}
	return out
}

func ToReviewResponse(r entity.Review, now time.Time) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID.String(),
		Author:    r.Author,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		Age:       AgeLabel(now.Sub(r.CreatedAt)),
	}
}

func ToReviewResponses(reviews []entity.Review, now time.Time) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ToReviewResponse(r, now))
	}
	return out
}

func ToNotificationResponse(n entity.Notification, now time.Time) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Icon:      n.Icon,
		Category:  string(n.Category),
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		Age:       AgeLabel(now.Sub(n.CreatedAt)),
		Read:      n.Read,
	}
}

func ToPreferencesResponse(p entity.NotificationPreferences) PreferencesResponse {
	return PreferencesResponse{
		SlotConfirmed:    p.SlotConfirmed,
		QueueAlmostDone:  p.QueueAlmostDone,
		CenterStatus:     p.CenterStatus,
		WaitThreshold:    p.WaitThreshold,
		ThresholdMinutes: p.ThresholdMinutes,
	}
}

// AgeLabel renders a duration as a compact relative label.
func AgeLabel(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
