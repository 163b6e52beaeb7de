package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByRole(ctx context.Context, role Role) ([]User, error)
	SearchByName(ctx context.Context, name string) ([]User, error)
	FindByUserID(ctx context.Context, userID string) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role Role) (*mongo.UpdateResult, error)
	EnsureIndexes(ctx context.Context) error
}

type userRepository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection("users")}
}

// EnsureIndexes cria o índice único de email que fecha a janela de corrida
// do cadastro check-then-insert.
func (r *userRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *userRepository) FindAll(ctx context.Context) ([]User, error) {
	return r.find(ctx, bson.M{})
}

func (r *userRepository) FindByRole(ctx context.Context, role Role) ([]User, error) {
	return r.find(ctx, bson.M{"role": role})
}

func (r *userRepository) SearchByName(ctx context.Context, name string) ([]User, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: name, Options: "i"}}
	return r.find(ctx, filter)
}

func (r *userRepository) FindByUserID(ctx context.Context, userID string) ([]User, error) {
	return r.find(ctx, bson.M{"id": userID})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Insert(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, doc)
}

func (r *userRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role Role) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"role": role}}
	return r.coll.UpdateOne(ctx, filter, update)
}

func (r *userRepository) find(ctx context.Context, filter bson.M) ([]User, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
