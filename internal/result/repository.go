package result

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository interface {
	FindAll(ctx context.Context) ([]Result, error)
	FindByEmail(ctx context.Context, email *string) ([]Result, error)
	Insert(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type resultRepository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) ResultRepository {
	return &resultRepository{coll: db.Collection("quizResults")}
}

func (r *resultRepository) FindAll(ctx context.Context) ([]Result, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []Result
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// FindByEmail ordena por date decrescente no próprio store.
// email == nil significa sem filtro.
func (r *resultRepository) FindByEmail(ctx context.Context, email *string) ([]Result, error) {
	filter := bson.M{}
	if email != nil {
		filter["email"] = *email
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []Result
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) Insert(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, doc)
}

func (r *resultRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.coll.DeleteOne(ctx, bson.M{"_id": id})
}
