// Package memory is the degraded-mode dataset: a fixture-backed
// implementation of the persistence interfaces, selected at startup when
// the database is unavailable. State is process-local and resets on
// restart.
package memory

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/ubtds/ubtds-api/internal/models"
)

// Store keeps the portal dataset in-process behind a single mutex.
type Store struct {
	mu sync.RWMutex

	users        map[string]models.User
	emailIndex   map[string]string
	zones        []models.ZoneSummary
	catalog      []models.CatalogBook
	orders       []models.Order
	pickups      []models.PickupRequest
	bulkRequests []models.BulkRequest
	feedback     []models.Feedback
	distributors []models.DistributorSummary
}

// NewStore initializes the store with the seed dataset.
func NewStore() *Store {
	s := &Store{
		users:      make(map[string]models.User),
		emailIndex: make(map[string]string),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	s.zones = seedZones()
	s.catalog = seedCatalog()
	s.orders = seedOrders()
	s.pickups = seedPickups()
	s.bulkRequests = seedBulkRequests()
	s.feedback = seedFeedback()
	s.distributors = seedDistributors(s.zones)

	for _, u := range seedUsers() {
		s.users[u.ID] = u
		s.emailIndex[u.Email] = u.ID
	}
}

func seedUsers() []models.User {
	admin := models.User{
		ID:        "user-admin",
		Email:     "admin@ubtds.test",
		FirstName: "System",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
	}
	enrollment := "2201234567"
	student := models.User{
		ID:           "user-student",
		Email:        "student@ubtds.test",
		FirstName:    "Amit",
		LastName:     "Sharma",
		Phone:        "+91-9876543210",
		Address:      "Dwarka Sector 10, New Delhi",
		Role:         models.RoleStudent,
		EnrollmentNo: &enrollment,
	}

	if hash, err := bcrypt.GenerateFromPassword([]byte("Admin@123"), 10); err == nil {
		admin.PasswordHash = string(hash)
	}
	if hash, err := bcrypt.GenerateFromPassword([]byte("Student@123"), 10); err == nil {
		student.PasswordHash = string(hash)
	}

	return []models.User{admin, student}
}
