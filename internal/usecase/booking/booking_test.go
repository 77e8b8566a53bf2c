package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/servibook/booking-api/internal/db"
	domain "github.com/servibook/booking-api/internal/domain/booking"
	infraRepo "github.com/servibook/booking-api/internal/infra/repository"
	"github.com/servibook/booking-api/internal/models"
	"github.com/servibook/booking-api/internal/notify"
)

type fixture struct {
	db       *gorm.DB
	repo     domain.Repository
	notifier *notify.MockNotifier
	dispatch *notify.Dispatcher

	user *models.User
	svc  *models.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	user := &models.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "x", Role: "user"}
	require.NoError(t, db.Create(user).Error)

	svc := &models.Service{
		Name:        "Basic Car Wash",
		Description: "Exterior wash",
		Category:    "car_wash",
		Price:       29.99,
		Duration:    30,
		Status:      models.ServiceStatusActive,
	}
	require.NoError(t, db.Create(svc).Error)

	notifier := notify.NewMockNotifier()
	return &fixture{
		db:       db,
		repo:     infraRepo.NewBookingGormRepository(db),
		notifier: notifier,
		dispatch: notify.NewDispatcher(notifier),
		user:     user,
		svc:      svc,
	}
}

func (f *fixture) createInput(date, slot string) CreateBookingInput {
	return CreateBookingInput{
		UserID:    f.user.ID,
		ServiceID: f.svc.ID,
		Date:      date,
		TimeSlot:  slot,
		Address:   "42 Main St",
	}
}

const eventuallyWait = 2 * time.Second

const eventuallyTick = 10 * time.Millisecond
