package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-carver/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of generated mazes.
type MazeRepo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	return &MazeRepo{
		collection: client.Database(dbName).Collection(collectionName),
		timeout:    2 * time.Second,
	}
}

// Save inserts the maze or replaces the stored copy with the same ID.
func (r *MazeRepo) Save(ctx context.Context, m *dmn.Maze) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": m.ID}, m, opts); err != nil {
		return fmt.Errorf("save maze %s: %w", m.ID, err)
	}
	return nil
}

// ByID retrieves a maze by its ID.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var m dmn.Maze
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, fmt.Errorf("find maze %s: %w", id, err)
	}
	return &m, nil
}

// ByIDs retrieves the mazes with the given IDs, in the order of ids.
func (r *MazeRepo) ByIDs(ctx context.Context, ids []uuid.UUID) ([]*dmn.Maze, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find mazes: %w", err)
	}
	defer cur.Close(ctx)

	var found []*dmn.Maze
	if err := cur.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("decode mazes: %w", err)
	}

	return orderByIDs(found, ids), nil
}

func orderByIDs(mazes []*dmn.Maze, ids []uuid.UUID) []*dmn.Maze {
	byID := make(map[uuid.UUID]*dmn.Maze, len(mazes))
	for _, m := range mazes {
		byID[m.ID] = m
	}

	ordered := make([]*dmn.Maze, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			ordered = append(ordered, m)
		}
	}
	return ordered
}
