package wire

import (
	"phi-inspection/internal/adaptor"
	"phi-inspection/pkg/middleware"
	"phi-inspection/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTask(
	r chi.Router,
	taskHandler *adaptor.TaskHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/tasks", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Post("/", taskHandler.CreateTask)
		r.Get("/", taskHandler.GetTasks)
		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})
}
