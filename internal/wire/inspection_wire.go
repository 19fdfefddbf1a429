package wire

import (
	"phi-inspection/internal/adaptor"
	"phi-inspection/pkg/middleware"
	"phi-inspection/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInspection(
	r chi.Router,
	inspectionHandler *adaptor.InspectionHandler,
	analyticsHandler *adaptor.AnalyticsHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/inspections", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// Static analytics paths win over the {id} wildcard.
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/daily", analyticsHandler.DailyCounts)
			r.Get("/categories", analyticsHandler.Categories)
			r.Get("/high-risk", analyticsHandler.HighRisk)
		})

		r.Post("/", inspectionHandler.CreateInspection)
		r.Get("/", inspectionHandler.GetInspections)
		r.Get("/{id}", inspectionHandler.GetInspection)       // public INS- identifier
		r.Put("/{id}", inspectionHandler.UpdateInspection)    // storage identifier
		r.Delete("/{id}", inspectionHandler.DeleteInspection) // storage identifier
	})
}
