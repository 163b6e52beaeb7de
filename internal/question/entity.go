package question

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Question struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Question      string             `bson:"question" json:"question"`
	Category      string             `bson:"category" json:"category"`
	Options       []string           `bson:"options" json:"options"`
	CorrectAnswer string             `bson:"correctAnswer" json:"correctAnswer"`
	CreatedBy     string             `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}
