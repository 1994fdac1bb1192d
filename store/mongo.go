package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on top of a single MongoDB collection.
type Mongo struct {
	collection *mongo.Collection
}

func NewMongo(collection *mongo.Collection) *Mongo {
	return &Mongo{collection: collection}
}

func (m *Mongo) Insert(ctx context.Context, doc interface{}) error {
	_, err := m.collection.InsertOne(ctx, doc)
	return err
}

func (m *Mongo) Find(ctx context.Context, filter Filter, offset, limit int64, out interface{}) error {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)
	cursor, err := m.collection.Find(ctx, m.query(filter), opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func (m *Mongo) Count(ctx context.Context, filter Filter) (int64, error) {
	return m.collection.CountDocuments(ctx, m.query(filter))
}

func (m *Mongo) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (UpdateResult, error) {
	res, err := m.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{
		Matched:  res.MatchedCount > 0,
		Modified: res.ModifiedCount > 0,
	}, nil
}

func (m *Mongo) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := m.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (m *Mongo) query(filter Filter) bson.M {
	q := bson.M{}
	for k, v := range filter {
		q[k] = v
	}
	return q
}
