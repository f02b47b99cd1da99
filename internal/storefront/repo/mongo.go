package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

const snapshotsCollection = "snapshots"

type snapshotDoc struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoSnapshotStore keeps one document per snapshot key.
type MongoSnapshotStore struct {
	coll *mongo.Collection
}

func NewMongoSnapshotStore(db *mongo.Database) *MongoSnapshotStore {
	return &MongoSnapshotStore{coll: db.Collection(snapshotsCollection)}
}

func (m *MongoSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var doc snapshotDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load snapshot from mongo")
		return nil, false, errx.WrapMongo(err)
	}
	return doc.Data, true, nil
}

func (m *MongoSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	doc := snapshotDoc{Key: key, Data: data, UpdatedAt: time.Now().UTC()}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save snapshot to mongo")
		return errx.WrapMongo(err)
	}
	return nil
}

var _ model.SnapshotStore = (*MongoSnapshotStore)(nil)
