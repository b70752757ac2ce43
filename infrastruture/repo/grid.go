package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const gridQueryTimeout = 2 * time.Second

// GridRepo stores grid layouts in MongoDB.
type GridRepo struct {
	collection *mongo.Collection
}

// NewGridRepo creates a GridRepo backed by the given database and collection.
func NewGridRepo(client *mongo.Client, dbName, collectionName string) *GridRepo {
	return &GridRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save inserts the grid or replaces the stored one with the same id.
func (g *GridRepo) Save(ctx context.Context, grid *dmn.Grid) error {
	ctx, cancel := context.WithTimeout(ctx, gridQueryTimeout)
	defer cancel()

	filter := bson.M{"_id": grid.ID}
	update := bson.M{
		"$set": bson.M{
			"ownerId":   grid.OwnerID,
			"name":      grid.Name,
			"rows":      grid.Rows,
			"cols":      grid.Cols,
			"tiles":     grid.Tiles,
			"createdAt": grid.CreatedAt,
			"updatedAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := g.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a grid, or dmn.ErrGridNotFound.
func (g *GridRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Grid, error) {
	ctx, cancel := context.WithTimeout(ctx, gridQueryTimeout)
	defer cancel()

	var grid dmn.Grid
	if err := g.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&grid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrGridNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &grid, nil
}
