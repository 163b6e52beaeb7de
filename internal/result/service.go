package result

import (
	"context"

	"github.com/saulo-duarte/quizapp-server/internal/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResultService interface {
	ListAll(ctx context.Context) ([]Result, error)
	ListByEmail(ctx context.Context, email *string) ([]Result, error)
	Record(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type resultService struct {
	repo ResultRepository
}

func NewService(repo ResultRepository) ResultService {
	return &resultService{repo: repo}
}

func (s *resultService) ListAll(ctx context.Context) ([]Result, error) {
	log := config.WithContext(ctx)

	results, err := s.repo.FindAll(ctx)
	if err != nil {
		log.WithError(err).Error("Erro ao listar resultados")
		return nil, err
	}
	if results == nil {
		results = []Result{}
	}
	return results, nil
}

func (s *resultService) ListByEmail(ctx context.Context, email *string) ([]Result, error) {
	log := config.WithContext(ctx)

	results, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Erro ao listar resultados por email")
		return nil, err
	}
	if results == nil {
		results = []Result{}
	}
	return results, nil
}

func (s *resultService) Record(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error) {
	log := config.WithContext(ctx)
	log.Info("Registrando resultado de quiz...")

	result, err := s.repo.Insert(ctx, doc)
	if err != nil {
		log.WithError(err).Error("Erro ao registrar resultado")
		return nil, err
	}

	log.Info("Resultado registrado com sucesso")
	return result, nil
}

func (s *resultService) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	log := config.WithContext(ctx)
	log.Info("Deletando resultado...")

	result, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Erro ao deletar resultado")
		return nil, err
	}

	log.Info("Resultado deletado, deletados: ", result.DeletedCount)
	return result, nil
}
