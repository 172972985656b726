// Package repo persists users and solve runs in MongoDB.
package repo

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SolveRepo handles the persistence of solve runs.
type SolveRepo struct {
	collection *mongo.Collection
}

// NewSolveRepo creates a new SolveRepo with the given MongoDB client, database name, and collection name.
func NewSolveRepo(client *mongo.Client, dbName, collectionName string) *SolveRepo {
	return &SolveRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the owner listing index.
func (s *SolveRepo) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts a solve.
func (s *SolveRepo) Save(ctx context.Context, solve *dmn.Solve) error {
	if _, err := s.collection.InsertOne(ctx, solve); err != nil {
		return fmt.Errorf("inserting solve %s: %w", solve.ID, err)
	}
	return nil
}

// ByID retrieves a solve with its animation.
func (s *SolveRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Solve, error) {
	var solve dmn.Solve
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&solve); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrSolveNotFound
		}
		return nil, fmt.Errorf("finding solve %s: %w", id, err)
	}
	return &solve, nil
}

// ByOwner lists up to limit solves of an owner, newest first.
// Animations are left out; fetch them with ByID.
func (s *SolveRepo) ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.Solve, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"animation": 0})

	cursor, err := s.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing solves of %s: %w", ownerID, err)
	}

	solves := []*dmn.Solve{}
	if err := cursor.All(ctx, &solves); err != nil {
		return nil, fmt.Errorf("decoding solves of %s: %w", ownerID, err)
	}
	return solves, nil
}
