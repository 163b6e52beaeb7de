package question

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizapp-server/internal/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

// GetQuiz responde GET /questions: sorteio de num perguntas da categoria,
// com opções embaralhadas. ?category= ausente significa qualquer categoria;
// presente porém vazio casa apenas categoria literalmente vazia.
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	count := DefaultQuizSize
	if numStr := r.URL.Query().Get("num"); numStr != "" {
		if n, err := strconv.Atoi(numStr); err == nil {
			count = n
		}
	}

	var category *string
	if r.URL.Query().Has("category") {
		c := r.URL.Query().Get("category")
		category = &c
	}

	questions, err := h.service.SampleQuiz(r.Context(), category, count)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar perguntas sorteadas")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	questions, err := h.service.ListAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao listar todas as perguntas")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) ListMyQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var email *string
	if r.URL.Query().Has("email") {
		e := r.URL.Query().Get("email")
		email = &e
	}

	questions, err := h.service.ListByCreator(r.Context(), email)
	if err != nil {
		log.WithError(err).Error("Erro ao listar quizzes do criador")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

// AddQuestion insere o documento do corpo sem validação de esquema,
// exatamente como recebido.
func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var doc map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar pergunta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Add(r.Context(), doc)
	if err != nil {
		log.WithError(err).Error("Erro ao criar pergunta")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	idStr := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		log.Warn("ID de pergunta inválido: ", idStr)
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	result, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Erro ao deletar pergunta")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
