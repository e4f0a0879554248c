// Package sample реализует HTTP-обработчик выдачи набора полей примера
// данных продукта. Пример данных — закрытая возможность.
package sample

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/dataiq/storefront/internal/http/middlewarectx"
	"github.com/dataiq/storefront/internal/http/response"
	"github.com/dataiq/storefront/internal/lib/sl"
	"github.com/dataiq/storefront/internal/models"
)

type Handler struct {
	log     *slog.Logger
	access  AccessService
	catalog CatalogService
}

type AccessService interface {
	Session(ctx context.Context, visitorUID string) (models.Session, error)
	CanAccess(session models.Session, feature string) bool
}

type CatalogService interface {
	Product(id string) (models.DataProduct, bool)
}

func New(log *slog.Logger, access AccessService, catalog CatalogService) *Handler {
	return &Handler{log: log, access: access, catalog: catalog}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.sample"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	visitorUID, ok := r.Context().Value(middlewarectx.VisitorUID).(string)
	if !ok || visitorUID == "" {
		log.Error("visitor uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	session, err := h.access.Session(r.Context(), visitorUID)
	if err != nil {
		log.Error("failed to load session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}
	if !h.access.CanAccess(session, "sampleData") {
		log.Info("sample data access denied", slog.String("role", string(session.Role)))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("sample data requires a trial or paid plan"))
		return
	}

	productID := chi.URLParam(r, "productID")
	product, ok := h.catalog.Product(productID)
	if !ok {
		log.Info("product not found", slog.String("product_id", productID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("product not found"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"product_id": product.ID,
		"fields":     product.SampleFields,
	}))
}
