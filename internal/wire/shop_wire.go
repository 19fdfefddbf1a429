package wire

import (
	"phi-inspection/internal/adaptor"
	"phi-inspection/pkg/middleware"
	"phi-inspection/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireShop registers owner-scoped shop routes. All of them require a token.
func wireShop(
	r chi.Router,
	shopHandler *adaptor.ShopHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/shops", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Post("/", shopHandler.CreateShop)
		r.Get("/", shopHandler.GetShops)
		r.Post("/update-ownership", shopHandler.UpdateOwnership) // back-fill legacy shops
		r.Get("/{id}", shopHandler.GetShop)
		r.Put("/{id}", shopHandler.UpdateShop)
		r.Delete("/{id}", shopHandler.DeleteShop)
	})
}
