// Package services содержит симуляцию оформления заказа: фиксированную
// паузу "обработки платежа", формирование заказа из снимка корзины и ее
// очистку после успеха. Настоящего платежного контура нет.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dataiq/storefront/internal/models"
)

// ErrEmptyCart оформление пустой корзины.
var ErrEmptyCart = errors.New("cart is empty")

// CartProvider определяет операции корзины, нужные оформлению заказа.
type CartProvider interface {
	Cart(ctx context.Context, visitorUID string) (models.Cart, error)
	Clear(ctx context.Context, visitorUID string) error
}

// CheckoutService реализует симуляцию оформления заказа.
type CheckoutService struct {
	carts CartProvider
	log   *slog.Logger
	delay time.Duration
	now   func() time.Time
}

// NewCheckoutService создает новый экземпляр CheckoutService. Задержка
// обработки передается снаружи, в тестах она нулевая.
func NewCheckoutService(carts CartProvider, log *slog.Logger, delay time.Duration, now func() time.Time) *CheckoutService {
	if now == nil {
		now = time.Now
	}
	return &CheckoutService{
		carts: carts,
		log:   log,
		delay: delay,
		now:   now,
	}
}

// Process оформляет заказ по текущей корзине посетителя. Пустая корзина —
// ошибка. Пауза обработки уважает контекст: отмена запроса прекращает
// ожидание, не оставляя подвисшего таймера, и корзина остается нетронутой.
func (s *CheckoutService) Process(ctx context.Context, visitorUID string, contact models.ContactDetails) (*models.Order, error) {
	const op = "checkout.Process"

	cart, err := s.carts.Cart(ctx, visitorUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(cart) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyCart)
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		}
	}

	order := &models.Order{
		ID:         uuid.New().String(),
		Items:      cart,
		TotalPrice: cart.TotalPrice(),
		TotalCount: cart.TotalCount(),
		Contact:    contact,
		CreatedAt:  s.now(),
	}

	if err := s.carts.Clear(ctx, visitorUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("order processed",
		slog.String("visitor_uid", visitorUID),
		slog.String("order_id", order.ID),
		slog.Float64("total", order.TotalPrice))
	return order, nil
}
