package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quizapp-server/internal/config"
	"github.com/saulo-duarte/quizapp-server/internal/container"
	"github.com/saulo-duarte/quizapp-server/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	config.Init(cfg.LogLevel)

	ctx := context.Background()
	c, err := container.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar no MongoDB")
	}
	defer c.Close(ctx)

	r := router.New(router.RouterConfig{
		QuestionHandler: c.QuestionContainer.Handler,
		UserHandler:     c.UserContainer.Handler,
		ResultHandler:   c.ResultContainer.Handler,
	})

	logrus.Info("Quiz app Server rodando na porta ", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logrus.WithError(err).Fatal("Servidor HTTP encerrou com erro")
	}
}
