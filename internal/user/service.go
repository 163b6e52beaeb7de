package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-server/internal/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrAlreadyExists = errors.New("user already exists")

type UserService interface {
	ListAll(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	Search(ctx context.Context, name, userID string) ([]User, error)
	Register(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error)
	Promote(ctx context.Context, id primitive.ObjectID, role Role) (*mongo.UpdateResult, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListAll(ctx context.Context) ([]User, error) {
	log := config.WithContext(ctx)

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		log.WithError(err).Error("Erro ao listar usuários")
		return nil, err
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

func (s *userService) ListByRole(ctx context.Context, role Role) ([]User, error) {
	log := config.WithContext(ctx)

	users, err := s.repo.FindByRole(ctx, role)
	if err != nil {
		log.WithError(err).Error("Erro ao listar usuários por papel")
		return nil, err
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

// Search resolve o ramo de busca: nome (substring, sem distinção de
// maiúsculas), senão o campo id, senão todos os estudantes.
func (s *userService) Search(ctx context.Context, name, userID string) ([]User, error) {
	log := config.WithContext(ctx)

	var (
		users []User
		err   error
	)
	switch {
	case name != "":
		users, err = s.repo.SearchByName(ctx, name)
	case userID != "":
		users, err = s.repo.FindByUserID(ctx, userID)
	default:
		users, err = s.repo.FindByRole(ctx, RoleStudent)
	}
	if err != nil {
		log.WithError(err).Error("Erro ao buscar usuários")
		return nil, err
	}
	return users, nil
}

// Register é idempotente por email: usuário existente devolve
// ErrAlreadyExists sem mutação. O índice único de email cobre a corrida
// entre a verificação e o insert; o conflito vira o mesmo ErrAlreadyExists.
func (s *userService) Register(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error) {
	log := config.WithContext(ctx)
	log.Info("Cadastrando usuário...")

	email, _ := doc["email"].(string)
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Erro ao verificar usuário existente")
		return nil, err
	}
	if existing != nil {
		log.Info("Usuário já cadastrado: ", email)
		return nil, ErrAlreadyExists
	}

	if id, _ := doc["id"].(string); id == "" {
		doc["id"] = uuid.NewString()
	}

	result, err := s.repo.Insert(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Info("Cadastro concorrente detectado: ", email)
			return nil, ErrAlreadyExists
		}
		log.WithError(err).Error("Erro ao cadastrar usuário")
		return nil, err
	}

	log.Info("Usuário cadastrado com sucesso")
	return result, nil
}

func (s *userService) Promote(ctx context.Context, id primitive.ObjectID, role Role) (*mongo.UpdateResult, error) {
	log := config.WithContext(ctx)
	log.Info("Atualizando papel do usuário para ", role)

	result, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		log.WithError(err).Error("Erro ao atualizar papel do usuário")
		return nil, err
	}

	log.Info("Papel atualizado, correspondências: ", result.MatchedCount)
	return result, nil
}
