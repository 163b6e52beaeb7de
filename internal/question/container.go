package question

import "go.mongodb.org/mongo-driver/mongo"

type QuestionContainer struct {
	Handler *Handler
}

func NewQuestionContainer(db *mongo.Database) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &QuestionContainer{
		Handler: handler,
	}
}
