package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizapp-server/internal/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	users, err := h.service.ListAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao listar usuários")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, users)
}

func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, RoleStudent)
}

func (h *Handler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, RoleTeacher)
}

func (h *Handler) listByRole(w http.ResponseWriter, r *http.Request, role Role) {
	log := config.WithContext(r.Context())

	users, err := h.service.ListByRole(r.Context(), role)
	if err != nil {
		log.WithError(err).Error("Erro ao listar usuários por papel")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, users)
}

// SearchUser responde GET /searchUser. Resultado vazio vira 404, a única
// rota que distingue "nada encontrado" de sucesso.
func (h *Handler) SearchUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	name := r.URL.Query().Get("name")
	userID := r.URL.Query().Get("id")

	users, err := h.service.Search(r.Context(), name, userID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar usuários")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if len(users) == 0 {
		http.Error(w, "No users found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, users)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var doc map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para cadastrar usuário")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Register(r.Context(), doc)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			config.JSON(w, http.StatusOK, map[string]string{
				"message": "User already exists",
			})
			return
		}
		log.WithError(err).Error("Erro ao cadastrar usuário")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) PromoteTeacher(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, RoleTeacher)
}

func (h *Handler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, RoleAdmin)
}

func (h *Handler) promote(w http.ResponseWriter, r *http.Request, role Role) {
	log := config.WithContext(r.Context())

	idStr := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		log.Warn("ID de usuário inválido: ", idStr)
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	result, err := h.service.Promote(r.Context(), id, role)
	if err != nil {
		log.WithError(err).Error("Erro ao promover usuário")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
