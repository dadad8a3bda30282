package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/amazeing-labs/amazeing-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMazeNotFound indicates the requested maze record does not exist.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo handles the persistence of maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze record.
func (m *MazeRepo) Save(record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	update := bson.M{"$set": record}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze record by its ID.
func (m *MazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var record dmn.MazeRecord
	if err := m.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}

// ByIDs retrieves the records for the given IDs, newest first. Unknown
// IDs are skipped rather than failing the whole batch.
func (m *MazeRepo) ByIDs(ids []uuid.UUID) ([]*dmn.MazeRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": bson.M{"$in": ids}}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() { _ = cursor.Close(ctx) }()

	var records []*dmn.MazeRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return records, nil
}
