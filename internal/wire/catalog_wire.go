package wire

import (
	"ecommerce-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, handler *adaptor.Handler) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", handler.Category.ListCategories)
		r.Post("/", handler.Category.CreateCategory)
		r.Get("/{id}", handler.Category.GetCategory)
		r.Put("/{id}", handler.Category.UpdateCategory)
		r.Patch("/{id}", handler.Category.PatchCategory)
		r.Delete("/{id}", handler.Category.DeleteCategory)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", handler.Product.ListProducts)
		r.Post("/", handler.Product.CreateProduct)
		r.Get("/{id}", handler.Product.GetProduct)
		r.Put("/{id}", handler.Product.UpdateProduct)
		r.Patch("/{id}", handler.Product.PatchProduct)
		r.Delete("/{id}", handler.Product.DeleteProduct)
	})

	r.Get("/stats", handler.Stats.GetStats)
}
