// Package services содержит бизнес-логику корзины: добавление и удаление
// позиций, очистку и подсчет итогов. Каждый переход состояния применяется
// чистой функцией модели, после чего снимок корзины сохраняется целиком.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dataiq/storefront/internal/catalog"
	"github.com/dataiq/storefront/internal/models"
	"github.com/dataiq/storefront/internal/store"
)

// StateStore определяет методы для чтения и записи состояния посетителя.
type StateStore interface {
	Get(ctx context.Context, visitorUID, entry string, result any) (bool, error)
	Set(ctx context.Context, visitorUID, entry string, value any) error
	Invalidate(ctx context.Context, visitorUID, entry string) error
}

// ErrUnknownProduct добавляемый продукт отсутствует в каталоге.
var ErrUnknownProduct = fmt.Errorf("unknown product")

// CartService реализует операции над корзиной посетителя.
type CartService struct {
	states  StateStore
	catalog *catalog.Catalog
	log     *slog.Logger
}

// NewCartService создает новый экземпляр CartService.
func NewCartService(states StateStore, cat *catalog.Catalog, log *slog.Logger) *CartService {
	return &CartService{
		states:  states,
		catalog: cat,
		log:     log,
	}
}

// Cart возвращает сохраненную корзину посетителя. Отсутствующая или
// поврежденная запись приравнивается к пустой корзине.
func (s *CartService) Cart(ctx context.Context, visitorUID string) (models.Cart, error) {
	var cart models.Cart
	found, err := s.states.Get(ctx, visitorUID, store.KeyCart, &cart)
	if err != nil {
		return nil, err
	}
	if !found {
		return models.Cart{}, nil
	}
	return cart, nil
}

// Add добавляет позицию в корзину. Название и цена позиции берутся из
// каталога по продукту и плану, количество по умолчанию 1. Позиция с уже
// существующей парой (продукт, план) увеличивает количество вместо
// дублирования строки.
func (s *CartService) Add(ctx context.Context, visitorUID, productID string, plan models.Plan, quantity int) (models.Cart, error) {
	const op = "cart.Add"

	product, ok := s.catalog.Product(productID)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrUnknownProduct, productID)
	}

	cart, err := s.Cart(ctx, visitorUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	cart = cart.Add(models.CartItem{
		ProductID:    product.ID,
		ProductName:  product.Name,
		SelectedPlan: plan,
		Price:        product.Prices.ForPlan(plan),
		Quantity:     quantity,
	})
	if err := s.states.Set(ctx, visitorUID, store.KeyCart, cart); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("added item to cart",
		slog.String("visitor_uid", visitorUID),
		slog.String("product_id", productID),
		slog.String("plan", string(plan)))
	return cart, nil
}

// Remove удаляет позиции продукта из корзины. Если план не задан,
// удаляются все плановые варианты продукта.
func (s *CartService) Remove(ctx context.Context, visitorUID, productID string, plan *models.Plan) (models.Cart, error) {
	const op = "cart.Remove"

	cart, err := s.Cart(ctx, visitorUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	cart = cart.Remove(productID, plan)
	if err := s.states.Set(ctx, visitorUID, store.KeyCart, cart); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

// Clear опустошает корзину. Используется и для явной очистки, и после
// успешного оформления заказа. Повторная очистка безопасна.
func (s *CartService) Clear(ctx context.Context, visitorUID string) error {
	const op = "cart.Clear"
	if err := s.states.Set(ctx, visitorUID, store.KeyCart, models.Cart{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
