package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/fleetboard/internal/domain/models"
)

const (
	loadsCollection         = "loads"
	inventoryCollection     = "inventory_items"
	auditsCollection        = "audit_reports"
	vehiclesCollection      = "vehicles"
	discrepanciesCollection = "discrepancies"
	digestsCollection       = "daily_digests"
)

// Repository defines the interface for digest storage.
type Repository interface {
	SaveDailyDigest(ctx context.Context, digest models.DailyDigest) error
}

var _ Repository = (*MongoDBRepository)(nil)

// MongoDBRepository serves dashboard records from MongoDB and stores digests.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		dbName: dbName,
	}, nil
}

func (r *MongoDBRepository) Loads(ctx context.Context) ([]models.Load, error) {
	return findAll[models.Load](ctx, r.collection(loadsCollection))
}

func (r *MongoDBRepository) InventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	return findAll[models.InventoryItem](ctx, r.collection(inventoryCollection))
}

func (r *MongoDBRepository) AuditReports(ctx context.Context) ([]models.AuditReport, error) {
	return findAll[models.AuditReport](ctx, r.collection(auditsCollection))
}

func (r *MongoDBRepository) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	return findAll[models.Vehicle](ctx, r.collection(vehiclesCollection))
}

func (r *MongoDBRepository) Discrepancies(ctx context.Context) ([]models.Discrepancy, error) {
	return findAll[models.Discrepancy](ctx, r.collection(discrepanciesCollection))
}

// SaveDailyDigest saves a digest snapshot to the database.
func (r *MongoDBRepository) SaveDailyDigest(ctx context.Context, digest models.DailyDigest) error {
	_, err := r.collection(digestsCollection).InsertOne(ctx, digest)
	if err != nil {
		return fmt.Errorf("failed to insert daily digest: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// findAll reads a whole collection ordered by _id so pages render stably.
func findAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}
