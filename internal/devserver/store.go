package devserver

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/mathangi54/travel-booking-client/internal/models"
)

// Storage errors shared by both store implementations.
var (
	ErrTourNotFound = errors.New("tour not found")
	ErrUserNotFound = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store is the persistence surface of the dev server. The in-memory
// implementation is the default; a Postgres one is selected when
// DATABASE_URL is set.
type Store interface {
	Ping() error

	ListTours() ([]models.Tour, error)
	GetTour(id int) (*models.Tour, error)
	ReplaceTours(tours []models.Tour) error

	CreateBooking(booking *models.Booking, userID *int) (int, error)

	CreateUser(username, email, passwordHash string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, string, error)
}

// MemoryStore keeps everything in process memory.
type MemoryStore struct {
	mu sync.Mutex

	tours    map[int]models.Tour
	bookings map[int]models.Booking
	users    map[int]memoryUser

	nextTourID    int
	nextBookingID int
	nextUserID    int
}

type memoryUser struct {
	user models.User
	hash string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tours:         make(map[int]models.Tour),
		bookings:      make(map[int]models.Booking),
		users:         make(map[int]memoryUser),
		nextTourID:    1,
		nextBookingID: 1,
		nextUserID:    1,
	}
}

func (s *MemoryStore) Ping() error { return nil }

func (s *MemoryStore) ListTours() ([]models.Tour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tours := make([]models.Tour, 0, len(s.tours))
	for _, tour := range s.tours {
		tours = append(tours, tour)
	}
	sort.Slice(tours, func(i, j int) bool { return tours[i].Name < tours[j].Name })
	return tours, nil
}

func (s *MemoryStore) GetTour(id int) (*models.Tour, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tour, ok := s.tours[id]
	if !ok {
		return nil, ErrTourNotFound
	}
	return &tour, nil
}

func (s *MemoryStore) ReplaceTours(tours []models.Tour) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tours = make(map[int]models.Tour, len(tours))
	s.nextTourID = 1
	for _, tour := range tours {
		tour.ID = s.nextTourID
		s.tours[tour.ID] = tour
		s.nextTourID++
	}
	return nil
}

func (s *MemoryStore) CreateBooking(booking *models.Booking, userID *int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = s.nextBookingID
	s.nextBookingID++
	if tour, ok := s.tours[booking.TourID]; ok {
		booking.TourName = tour.Name
	}
	s.bookings[booking.ID] = *booking
	_ = userID // memory store does not track ownership
	return booking.ID, nil
}

func (s *MemoryStore) CreateUser(username, email, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(email)
	for _, u := range s.users {
		if strings.ToLower(u.user.Email) == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:       s.nextUserID,
		Username: username,
		Email:    email,
		Role:     "user",
	}
	s.users[user.ID] = memoryUser{user: user, hash: passwordHash}
	s.nextUserID++
	return &user, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(email)
	for _, u := range s.users {
		if strings.ToLower(u.user.Email) == email {
			user := u.user
			return &user, u.hash, nil
		}
	}
	return nil, "", ErrUserNotFound
}
