// internal/store/store.go
package store

import (
	"context"
	"embed"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tanmaydb/courtdesk/internal/config"
	"github.com/tanmaydb/courtdesk/internal/fault"
	"github.com/tanmaydb/courtdesk/internal/models"
)

//go:embed migrations/*.json
var migrationsFS embed.FS

const (
	collMemberships   = "memberships"
	collUsers         = "users"
	collStaff         = "staff"
	collEvents        = "events"
	collRegistrations = "registrations"
	collBookings      = "bookings"
	collGuestBookings = "guest_bookings"

	connectTimeout = 10 * time.Second
)

// Store wraps the MongoDB client and exposes the collection operations the
// core components need. All errors leaving this package are fault errors.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB, applies the embedded index migrations, and returns
// a Store bound to the configured database.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}

	if err := runMigrations(client, cfg.Mongo.Database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
	}, nil
}

// NewWithDatabase binds a Store to an existing database handle. Used by tests
// that bring their own client.
func NewWithDatabase(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// runMigrations applies the embedded index migrations. A "no change" result
// is not treated as an error.
func runMigrations(client *mongo.Client, database string) error {
	driver, err := mongodb.WithInstance(client, &mongodb.Config{DatabaseName: database})
	if err != nil {
		return fmt.Errorf("could not create migrate driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not create source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "mongodb", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}
	return nil
}

// containsCI builds a case-insensitive substring filter for a user-supplied
// term. The term is quoted so regex metacharacters match literally.
func containsCI(term string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}
}

// equalsCI builds a case-insensitive exact-match filter.
func equalsCI(term string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(term) + "$", "$options": "i"}
}

// SearchPaidMemberships returns paid memberships whose name or email contains
// the term, newest first, capped at limit.
func (s *Store) SearchPaidMemberships(ctx context.Context, term string, limit int64) ([]models.Membership, error) {
	filter := bson.M{
		"status": models.MembershipStatusPaid,
		"$or": bson.A{
			bson.M{"userName": containsCI(term)},
			bson.M{"userEmail": containsCI(term)},
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.db.Collection(collMemberships).Find(ctx, filter, opts)
	if err != nil {
		return nil, fault.DataAccess("find memberships", err)
	}
	var memberships []models.Membership
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, fault.DataAccess("decode memberships", err)
	}
	return memberships, nil
}

// UsersByEmails fetches user profiles whose email exactly matches any of the
// given addresses, ignoring case.
func (s *Store) UsersByEmails(ctx context.Context, emails []string) ([]models.User, error) {
	if len(emails) == 0 {
		return nil, nil
	}
	matchers := make(bson.A, 0, len(emails))
	for _, email := range emails {
		matchers = append(matchers, bson.M{"email": equalsCI(email)})
	}

	cursor, err := s.db.Collection(collUsers).Find(ctx, bson.M{"$or": matchers})
	if err != nil {
		return nil, fault.DataAccess("find users", err)
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fault.DataAccess("decode users", err)
	}
	return users, nil
}

func (s *Store) StaffByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	err := s.db.Collection(collStaff).FindOne(ctx, bson.M{"email": equalsCI(email)}).Decode(&staff)
	if err == mongo.ErrNoDocuments {
		return nil, fault.NotFound("staff")
	}
	if err != nil {
		return nil, fault.DataAccess("find staff", err)
	}
	return &staff, nil
}

func (s *Store) EventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := s.db.Collection(collEvents).FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, fault.NotFound("event")
	}
	if err != nil {
		return nil, fault.DataAccess("find event", err)
	}
	return &event, nil
}

func (s *Store) CreateEvent(ctx context.Context, event *models.Event) (primitive.ObjectID, error) {
	event.CreatedAt = time.Now().UTC()
	res, err := s.db.Collection(collEvents).InsertOne(ctx, event)
	if err != nil {
		return primitive.NilObjectID, fault.DataAccess("insert event", err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	event.ID = id
	return id, nil
}

func (s *Store) ListEvents(ctx context.Context, limit int64) ([]models.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := s.db.Collection(collEvents).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fault.DataAccess("find events", err)
	}
	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fault.DataAccess("decode events", err)
	}
	return events, nil
}

func (s *Store) InsertRegistration(ctx context.Context, reg *models.Registration) (primitive.ObjectID, error) {
	reg.CreatedAt = time.Now().UTC()
	res, err := s.db.Collection(collRegistrations).InsertOne(ctx, reg)
	if err != nil {
		return primitive.NilObjectID, fault.DataAccess("insert registration", err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	reg.ID = id
	return id, nil
}

func (s *Store) BookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	cursor, err := s.db.Collection(collBookings).Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fault.DataAccess("find bookings", err)
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fault.DataAccess("decode bookings", err)
	}
	return bookings, nil
}

func (s *Store) GuestBookingsByDate(ctx context.Context, date string) ([]models.GuestBooking, error) {
	cursor, err := s.db.Collection(collGuestBookings).Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fault.DataAccess("find guest bookings", err)
	}
	var bookings []models.GuestBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fault.DataAccess("decode guest bookings", err)
	}
	return bookings, nil
}
