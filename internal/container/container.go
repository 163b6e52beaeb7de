package container

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saulo-duarte/quizapp-server/internal/config"
	"github.com/saulo-duarte/quizapp-server/internal/question"
	"github.com/saulo-duarte/quizapp-server/internal/result"
	"github.com/saulo-duarte/quizapp-server/internal/user"
)

type Container struct {
	QuestionContainer *question.QuestionContainer
	UserContainer     *user.UserContainer
	ResultContainer   *result.ResultContainer

	client *mongo.Client
}

func New(ctx context.Context, cfg config.App) (*Container, error) {
	client, err := config.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.DBName)

	userContainer := user.NewUserContainer(db)
	if err := userContainer.Repo.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Container{
		QuestionContainer: question.NewQuestionContainer(db),
		UserContainer:     userContainer,
		ResultContainer:   result.NewResultContainer(db),
		client:            client,
	}, nil
}

// Close libera o client Mongo; chamado apenas no desligamento do processo.
func (c *Container) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
