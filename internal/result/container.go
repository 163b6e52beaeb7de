package result

import "go.mongodb.org/mongo-driver/mongo"

type ResultContainer struct {
	Handler *Handler
}

func NewResultContainer(db *mongo.Database) *ResultContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ResultContainer{
		Handler: handler,
	}
}
