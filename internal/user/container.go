package user

import "go.mongodb.org/mongo-driver/mongo"

type UserContainer struct {
	Handler *Handler
	Repo    UserRepository
}

func NewUserContainer(db *mongo.Database) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &UserContainer{
		Handler: handler,
		Repo:    repo,
	}
}
