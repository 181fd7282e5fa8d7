package boards

import (
	"context"
	"fmt"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flowboardhq/flowboard/pkg/observability"
	"github.com/flowboardhq/flowboard/pkg/scene"
)

// shapesCollection is the MongoDB collection holding one document per shape.
const shapesCollection = "shapes"

// MongoConfig configures the MongoDB board store.
type MongoConfig struct {
	URI      string
	Database string
}

// MongoStore is a MongoDB-backed board registry.
// Shapes are stored one document per shape, keyed by (board_id, shape.id);
// a unique index enforces the per-board ID invariant at the storage layer.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

// shapeDoc is the persisted document shape.
type shapeDoc struct {
	BoardID string      `bson:"board_id"`
	Shape   scene.Shape `bson:"shape"`
}

// NewMongoStore connects to MongoDB and prepares the shapes collection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	col := client.Database(cfg.Database).Collection(shapesCollection)

	// Unique per-board shape IDs, enforced at the storage layer.
	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "board_id", Value: 1}, {Key: "shape.id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create shape index: %w", err)
	}

	return &MongoStore{client: client, col: col}, nil
}

// Board returns the engine for boardID. Boards exist implicitly: an
// unknown ID is an empty board.
func (s *MongoStore) Board(ctx context.Context, boardID string) (scene.Engine, error) {
	return &mongoEngine{col: s.col, boardID: boardID}, nil
}

// List returns the distinct board IDs present in the collection, sorted.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	raw, err := s.col.Distinct(ctx, "board_id", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// Close disconnects the MongoDB client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)

// =============================================================================
// Mongo-backed Engine
// =============================================================================

// mongoEngine adapts one board's slice of the shapes collection to the
// scene engine contract.
type mongoEngine struct {
	col     *mongo.Collection
	boardID string
}

// Shapes returns all shapes on the board in insertion order.
func (e *mongoEngine) Shapes(ctx context.Context) ([]scene.Shape, error) {
	observability.Store().OnRead(ctx, "mongo", e.boardID)

	cur, err := e.col.Find(ctx, bson.M{"board_id": e.boardID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		observability.Store().OnError(ctx, "mongo", e.boardID, err)
		return nil, fmt.Errorf("find shapes for %s: %w", e.boardID, err)
	}
	defer cur.Close(ctx)

	var shapes []scene.Shape
	for cur.Next(ctx) {
		var doc shapeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode shape: %w", err)
		}
		shapes = append(shapes, doc.Shape)
	}
	if err := cur.Err(); err != nil {
		observability.Store().OnError(ctx, "mongo", e.boardID, err)
		return nil, fmt.Errorf("iterate shapes for %s: %w", e.boardID, err)
	}
	return shapes, nil
}

// Shape resolves a shape handle on the board.
func (e *mongoEngine) Shape(ctx context.Context, id string) (scene.Shape, bool, error) {
	observability.Store().OnRead(ctx, "mongo", e.boardID)

	var doc shapeDoc
	err := e.col.FindOne(ctx, bson.M{"board_id": e.boardID, "shape.id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return scene.Shape{}, false, nil
	}
	if err != nil {
		observability.Store().OnError(ctx, "mongo", e.boardID, err)
		return scene.Shape{}, false, fmt.Errorf("resolve shape %s: %w", id, err)
	}
	return doc.Shape, true, nil
}

// CreateShapes inserts the batch. The batch is validated up front (empty
// and duplicate IDs), then written with an ordered InsertMany; the unique
// index backs the duplicate check for concurrent writers.
//
// An ordered InsertMany stops at the first failure but keeps the documents
// it already wrote. The engine contract is all-or-nothing, and a partial
// batch would strand the seed marker on a half-built layout, so a failed
// insert rolls back whatever made it in before the error surfaces.
func (e *mongoEngine) CreateShapes(ctx context.Context, batch []scene.Shape) error {
	if len(batch) == 0 {
		return nil
	}

	docs, err := newShapeDocs(e.boardID, batch)
	if err != nil {
		return err
	}

	res, err := e.col.InsertMany(ctx, docs)
	if err != nil {
		observability.Store().OnError(ctx, "mongo", e.boardID, err)
		if res != nil && len(res.InsertedIDs) > 0 {
			// The caller's context may already be dead; the rollback
			// must still run.
			cleanup := context.WithoutCancel(ctx)
			if _, delErr := e.col.DeleteMany(cleanup, partialInsertFilter(res.InsertedIDs)); delErr != nil {
				observability.Store().OnError(cleanup, "mongo", e.boardID, delErr)
				return fmt.Errorf("insert %d shapes for %s: %w (rollback of %d partial documents failed: %v)",
					len(batch), e.boardID, err, len(res.InsertedIDs), delErr)
			}
		}
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", scene.ErrDuplicateShapeID, err)
		}
		return fmt.Errorf("insert %d shapes for %s: %w", len(batch), e.boardID, err)
	}
	observability.Store().OnWrite(ctx, "mongo", e.boardID, len(batch))
	return nil
}

// newShapeDocs validates the batch against itself and builds the persisted
// documents. Conflicts with shapes already on the board are left to the
// unique (board_id, shape.id) index.
func newShapeDocs(boardID string, batch []scene.Shape) ([]any, error) {
	seen := make(map[string]bool, len(batch))
	docs := make([]any, len(batch))
	for i, s := range batch {
		if s.ID == "" {
			return nil, scene.ErrInvalidShapeID
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: %s", scene.ErrDuplicateShapeID, s.ID)
		}
		seen[s.ID] = true
		docs[i] = shapeDoc{BoardID: boardID, Shape: s}
	}
	return docs, nil
}

// partialInsertFilter matches exactly the documents a failed ordered
// InsertMany reported as written, by their _id values. Filtering on _id
// rather than shape IDs keeps the rollback from touching documents owned
// by a concurrent writer that won a duplicate-key race.
func partialInsertFilter(insertedIDs []any) bson.M {
	return bson.M{"_id": bson.M{"$in": insertedIDs}}
}

// Ensure mongoEngine implements the engine contract.
var _ scene.Engine = (*mongoEngine)(nil)
