package result

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizapp-server/internal/config"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	service ResultService
}

func NewHandler(s ResultService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListAllResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	results, err := h.service.ListAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao listar todos os resultados")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, results)
}

// ListMyResults responde GET /my-results: resultados do email, mais
// recentes primeiro. ?email= ausente devolve todos.
func (h *Handler) ListMyResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var email *string
	if r.URL.Query().Has("email") {
		e := r.URL.Query().Get("email")
		email = &e
	}

	results, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		log.WithError(err).Error("Erro ao listar resultados por email")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, results)
}

func (h *Handler) AddResult(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var doc map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para registrar resultado")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Record(r.Context(), doc)
	if err != nil {
		log.WithError(err).Error("Erro ao registrar resultado")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	idStr := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		log.Warn("ID de resultado inválido: ", idStr)
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	result, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Erro ao deletar resultado")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
