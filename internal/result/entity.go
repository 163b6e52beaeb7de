package result

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Result guarda a nota de um quiz. score e answers são opacos para o
// servidor; só email e date participam de filtros e ordenação.
type Result struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email   string             `bson:"email" json:"email"`
	Date    time.Time          `bson:"date" json:"date"`
	Score   interface{}        `bson:"score,omitempty" json:"score,omitempty"`
	Answers interface{}        `bson:"answers,omitempty" json:"answers,omitempty"`
}
