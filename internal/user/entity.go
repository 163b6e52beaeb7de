package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	// UserID é a chave de busca pública, distinta do _id atribuído pelo Mongo.
	UserID string `bson:"id,omitempty" json:"id,omitempty"`
	Email  string `bson:"email" json:"email"`
	Name   string `bson:"name" json:"name"`
	Role   Role   `bson:"role,omitempty" json:"role,omitempty"`
}
