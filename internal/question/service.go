package question

import (
	"context"
	"math/rand"

	"github.com/saulo-duarte/quizapp-server/internal/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const DefaultQuizSize = 10

type QuestionService interface {
	SampleQuiz(ctx context.Context, category *string, count int) ([]Question, error)
	ListAll(ctx context.Context) ([]Question, error)
	ListByCreator(ctx context.Context, email *string) ([]Question, error)
	Add(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type questionService struct {
	repo QuestionRepository
}

func NewService(repo QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

// SampleQuiz sorteia count perguntas da categoria pedida e embaralha as
// opções de cada uma. Se a população filtrada for menor que count, todas
// as perguntas disponíveis são retornadas.
func (s *questionService) SampleQuiz(ctx context.Context, category *string, count int) ([]Question, error) {
	log := config.WithContext(ctx)

	if count <= 0 {
		count = DefaultQuizSize
	}

	questions, err := s.repo.Sample(ctx, category, count)
	if err != nil {
		log.WithError(err).Error("Erro ao sortear perguntas")
		return nil, err
	}

	for i := range questions {
		shuffleOptions(&questions[i])
	}

	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}

// shuffleOptions aplica Fisher–Yates; cada busca devolve uma permutação
// nova e uniforme, independente da ordem armazenada.
func shuffleOptions(q *Question) {
	rand.Shuffle(len(q.Options), func(i, j int) {
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
	})
}

func (s *questionService) ListAll(ctx context.Context) ([]Question, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		log.WithError(err).Error("Erro ao listar perguntas")
		return nil, err
	}
	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}

func (s *questionService) ListByCreator(ctx context.Context, email *string) ([]Question, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.FindByCreator(ctx, email)
	if err != nil {
		log.WithError(err).Error("Erro ao listar perguntas do criador")
		return nil, err
	}
	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}

func (s *questionService) Add(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error) {
	log := config.WithContext(ctx)
	log.Info("Criando nova pergunta...")

	result, err := s.repo.Insert(ctx, doc)
	if err != nil {
		log.WithError(err).Error("Erro ao criar pergunta")
		return nil, err
	}

	log.Info("Pergunta criada com sucesso")
	return result, nil
}

func (s *questionService) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	log := config.WithContext(ctx)
	log.Info("Deletando pergunta...")

	result, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Erro ao deletar pergunta")
		return nil, err
	}

	log.Info("Pergunta deletada, deletadas: ", result.DeletedCount)
	return result, nil
}
