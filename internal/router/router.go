package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/quizapp-server/internal/middlewares"
	"github.com/saulo-duarte/quizapp-server/internal/question"
	"github.com/saulo-duarte/quizapp-server/internal/result"
	"github.com/saulo-duarte/quizapp-server/internal/user"
)

type RouterConfig struct {
	QuestionHandler *question.Handler
	UserHandler     *user.Handler
	ResultHandler   *result.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Quiz app Server is running.."))
	})

	r.Get("/questions", cfg.QuestionHandler.GetQuiz)
	r.Get("/all-questions", cfg.QuestionHandler.ListAll)
	r.Post("/add-question", cfg.QuestionHandler.AddQuestion)
	r.Get("/my-quizzes", cfg.QuestionHandler.ListMyQuizzes)
	r.Delete("/quiz/{id}", cfg.QuestionHandler.DeleteQuestion)

	r.Get("/users", cfg.UserHandler.ListUsers)
	r.Get("/users/students", cfg.UserHandler.ListStudents)
	r.Get("/users/teachers", cfg.UserHandler.ListTeachers)
	r.Get("/searchUser", cfg.UserHandler.SearchUser)
	r.Post("/users", cfg.UserHandler.Register)
	r.Patch("/users/teacher/{id}", cfg.UserHandler.PromoteTeacher)
	r.Patch("/users/admin/{id}", cfg.UserHandler.PromoteAdmin)

	r.Get("/all-exam-results", cfg.ResultHandler.ListAllResults)
	r.Get("/my-results", cfg.ResultHandler.ListMyResults)
	r.Post("/add-results", cfg.ResultHandler.AddResult)
	r.Delete("/reset-exam/{id}", cfg.ResultHandler.DeleteResult)

	return r
}
