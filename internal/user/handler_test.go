package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizapp-server/internal/user"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserService struct {
	users       []user.User
	registerErr error

	lastRole user.Role
}

func (f *fakeUserService) ListAll(context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeUserService) ListByRole(_ context.Context, role user.Role) ([]user.User, error) {
	f.lastRole = role
	return f.users, nil
}

func (f *fakeUserService) Search(context.Context, string, string) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeUserService) Register(context.Context, map[string]interface{}) (*mongo.InsertOneResult, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeUserService) Promote(_ context.Context, _ primitive.ObjectID, role user.Role) (*mongo.UpdateResult, error) {
	f.lastRole = role
	return &mongo.UpdateResult{MatchedCount: 0}, nil
}

func newUserRouter(svc user.UserService) http.Handler {
	h := user.NewHandler(svc)
	r := chi.NewRouter()
	r.Get("/searchUser", h.SearchUser)
	r.Post("/users", h.Register)
	r.Patch("/users/teacher/{id}", h.PromoteTeacher)
	r.Patch("/users/admin/{id}", h.PromoteAdmin)
	return r
}

func TestSearchUserHandler(t *testing.T) {
	t.Run("SemResultadoRetorna404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newUserRouter(&fakeUserService{}).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/searchUser?name=ninguem", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("Esperava 404, recebi %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "No users found") {
			t.Errorf("Corpo inesperado do 404: %q", rec.Body.String())
		}
	})

	t.Run("ComResultadoRetornaLista", func(t *testing.T) {
		svc := &fakeUserService{users: []user.User{{Email: "a@x.com", Name: "Ana"}}}
		rec := httptest.NewRecorder()
		newUserRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/searchUser?name=ana", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("Esperava 200, recebi %d", rec.Code)
		}
		var got []user.User
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("Resposta não é JSON de lista de usuários: %v", err)
		}
		if len(got) != 1 || got[0].Email != "a@x.com" {
			t.Errorf("Lista inesperada: %#v", got)
		}
	})
}

func TestRegisterHandler(t *testing.T) {
	t.Run("UsuarioJaExiste", func(t *testing.T) {
		svc := &fakeUserService{registerErr: user.ErrAlreadyExists}
		rec := httptest.NewRecorder()
		newUserRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users",
			strings.NewReader(`{"email":"a@x.com","name":"A"}`)))

		if rec.Code != http.StatusOK {
			t.Fatalf("Esperava 200, recebi %d", rec.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("Resposta inválida: %v", err)
		}
		if body["message"] != "User already exists" {
			t.Errorf("Mensagem inesperada: %q", body["message"])
		}
	})

	t.Run("UsuarioNovoRetornaAck", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newUserRouter(&fakeUserService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users",
			strings.NewReader(`{"email":"novo@x.com","name":"N","role":"Student"}`)))

		if rec.Code != http.StatusOK {
			t.Fatalf("Esperava 200, recebi %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "InsertedID") {
			t.Errorf("Esperava ack de inserção, recebi %q", rec.Body.String())
		}
	})
}

func TestPromoteHandler(t *testing.T) {
	t.Run("IDInvalido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newUserRouter(&fakeUserService{}).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPatch, "/users/teacher/xyz", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Esperava 400 para id inválido, recebi %d", rec.Code)
		}
	})

	t.Run("AdminAplicaPapelCerto", func(t *testing.T) {
		svc := &fakeUserService{}
		rec := httptest.NewRecorder()
		newUserRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPatch, "/users/admin/"+primitive.NewObjectID().Hex(), nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("Esperava 200, recebi %d", rec.Code)
		}
		if svc.lastRole != user.RoleAdmin {
			t.Errorf("Papel errado: %s", svc.lastRole)
		}
	})
}
