package question

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionRepository interface {
	Sample(ctx context.Context, category *string, size int) ([]Question, error)
	FindAll(ctx context.Context) ([]Question, error)
	FindByCreator(ctx context.Context, email *string) ([]Question, error)
	Insert(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type questionRepository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) QuestionRepository {
	return &questionRepository{coll: db.Collection("questions")}
}

// Sample sorteia até size documentos via $sample, sem reposição.
// category == nil significa sem filtro de categoria.
func (r *questionRepository) Sample(ctx context.Context, category *string, size int) ([]Question, error) {
	match := bson.M{}
	if category != nil {
		match["category"] = *category
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: size}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindAll(ctx context.Context) ([]Question, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByCreator(ctx context.Context, email *string) ([]Question, error) {
	filter := bson.M{}
	if email != nil {
		filter["createdBy"] = *email
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Insert(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, doc)
}

func (r *questionRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.coll.DeleteOne(ctx, bson.M{"_id": id})
}
