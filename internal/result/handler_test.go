package result_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizapp-server/internal/result"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeResultService struct {
	results []result.Result

	lastEmail *string
	lastDoc   map[string]interface{}
}

func (f *fakeResultService) ListAll(context.Context) ([]result.Result, error) {
	return f.results, nil
}

func (f *fakeResultService) ListByEmail(_ context.Context, email *string) ([]result.Result, error) {
	f.lastEmail = email
	return f.results, nil
}

func (f *fakeResultService) Record(_ context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error) {
	f.lastDoc = doc
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeResultService) Delete(context.Context, primitive.ObjectID) (*mongo.DeleteResult, error) {
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func newResultRouter(svc result.ResultService) http.Handler {
	h := result.NewHandler(svc)
	r := chi.NewRouter()
	r.Get("/my-results", h.ListMyResults)
	r.Get("/all-exam-results", h.ListAllResults)
	r.Post("/add-results", h.AddResult)
	r.Delete("/reset-exam/{id}", h.DeleteResult)
	return r
}

func TestListMyResultsHandler(t *testing.T) {
	t.Run("EmailPresente", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)
		svc := &fakeResultService{results: []result.Result{
			{Email: "a@x.com", Date: now},
			{Email: "a@x.com", Date: now.Add(-time.Hour)},
		}}
		rec := httptest.NewRecorder()
		newResultRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/my-results?email=a@x.com", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("Esperava 200, recebi %d", rec.Code)
		}
		if svc.lastEmail == nil || *svc.lastEmail != "a@x.com" {
			t.Errorf("Serviço recebeu email errado: %v", svc.lastEmail)
		}

		var got []result.Result
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("Resposta inválida: %v", err)
		}
		if len(got) != 2 || !got[0].Date.After(got[1].Date) {
			t.Errorf("Ordem da resposta não preserva a ordenação do serviço: %#v", got)
		}
	})

	t.Run("EmailAusenteSignificaTodos", func(t *testing.T) {
		svc := &fakeResultService{}
		rec := httptest.NewRecorder()
		newResultRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/my-results", nil))

		if svc.lastEmail != nil {
			t.Errorf("Email ausente deveria chegar como nil, recebeu %q", *svc.lastEmail)
		}
	})
}

func TestAddResultHandler(t *testing.T) {
	t.Run("DocumentoVerbatim", func(t *testing.T) {
		svc := &fakeResultService{}
		body := strings.NewReader(`{"email":"a@x.com","score":7,"answers":{"1":"b"}}`)
		rec := httptest.NewRecorder()
		newResultRouter(svc).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/add-results", body))

		if rec.Code != http.StatusOK {
			t.Fatalf("Esperava 200, recebi %d", rec.Code)
		}
		if svc.lastDoc["score"] != float64(7) {
			t.Errorf("Documento não chegou verbatim: %#v", svc.lastDoc)
		}
	})

	t.Run("CorpoInvalido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newResultRouter(&fakeResultService{}).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/add-results", strings.NewReader("nao-json")))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Esperava 400 para corpo inválido, recebi %d", rec.Code)
		}
	})
}

func TestDeleteResultHandler(t *testing.T) {
	t.Run("IDInvalido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newResultRouter(&fakeResultService{}).ServeHTTP(rec,
			httptest.NewRequest(http.MethodDelete, "/reset-exam/123", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Esperava 400 para id inválido, recebi %d", rec.Code)
		}
	})
}
