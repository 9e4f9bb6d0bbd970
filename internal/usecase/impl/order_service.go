package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "shop/internal/delivery/context"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type orderService struct {
	cartStore repository.CartStore
	orderRepo repository.OrderRepository
	txManager repository.TransactionManager
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	cartStore repository.CartStore,
	orderRepo repository.OrderRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		cartStore: cartStore,
		orderRepo: orderRepo,
		txManager: txManager,
		validate:  validator.New(),
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Checkout materializes the session's cart into a persisted order.
// The order row and all of its item rows are written in one transaction, so a
// failure partway leaves nothing behind. The cart is cleared only after commit.
func (s *orderService) Checkout(ctx context.Context, sessionID string, input *usecase.CheckoutInput) (*entity.Order, error) {
	entries, err := s.cartStore.Entries(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart entries")
	}
	if len(entries) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New(),
		Number:          entity.NewOrderNumber(now),
		DeliveryAddress: input.DeliveryAddress,
		CustomerPhone:   input.CustomerPhone,
		CustomerName:    input.CustomerName,
		CreatedAt:       now,
	}

	for _, entry := range entries {
		productID, err := uuid.Parse(entry.ProductID)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid product ID %q in cart", entry.ProductID)
		}

		order.Items = append(order.Items, &entity.OrderItem{
			ID:              uuid.New(),
			OrderID:         order.ID,
			ProductID:       productID,
			Quantity:        entry.Quantity,
			DiscountPerItem: decimal.Zero,
		})
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		return txRepoFactory.NewOrderRepository().CreateOrder(ctx, order)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateOrderNumber) {
			// Order numbers resolve to the second; a second order within the
			// same second trips the unique constraint and nothing is written.
			return nil, domainerrors.ErrOrderNumberConflict
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to create order")
	}

	if err := s.cartStore.Clear(ctx, sessionID); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart after checkout")
	}

	s.log(ctx).Info("Order created",
		slog.String("number", order.Number),
		slog.Int("items", len(order.Items)))

	return order, nil
}

// GetOrder returns a persisted order for the confirmation page.
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return order, nil
}
