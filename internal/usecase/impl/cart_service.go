package impl

import (
	"context"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type cartService struct {
	cartStore   repository.CartStore
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service instance
func NewCartService(cartStore repository.CartStore, productRepo repository.ProductRepository) usecase.CartUsecase {
	return &cartService{
		cartStore:   cartStore,
		productRepo: productRepo,
	}
}

// AddToCart adds one unit of the product to the session's cart.
// The product is resolved by direct ID, so a soft-deleted product is still a
// valid target; only listings hide it.
func (s *cartService) AddToCart(ctx context.Context, sessionID string, productID uuid.UUID) (*usecase.AddToCartOutput, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	// The unit price is snapshotted into the entry on first add. Totals are
	// computed from the live price at view time, not from this snapshot.
	cartTotal, err := s.cartStore.AddItem(ctx, sessionID, product.ID.String(), product.Price)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add item to cart")
	}

	return &usecase.AddToCartOutput{
		CartTotal:   cartTotal,
		ProductName: product.Name,
	}, nil
}

// RemoveFromCart drops the product's entry; absent products are a no-op.
func (s *cartService) RemoveFromCart(ctx context.Context, sessionID string, productID uuid.UUID) error {
	if err := s.cartStore.RemoveItem(ctx, sessionID, productID.String()); err != nil {
		return errors.Wrap(err, "failed to remove item from cart")
	}

	return nil
}

// ViewCart joins the stored entries against live product data.
func (s *cartService) ViewCart(ctx context.Context, sessionID string) (*entity.CartView, error) {
	entries, err := s.cartStore.Entries(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart entries")
	}

	view := &entity.CartView{
		Lines: make([]entity.CartLine, 0, len(entries)),
		Total: decimal.Zero,
	}

	for _, entry := range entries {
		productID, err := uuid.Parse(entry.ProductID)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid product ID %q in cart", entry.ProductID)
		}

		product, err := s.productRepo.FindProductByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// A product removed from the catalog after it was added to the
				// cart surfaces here, at view time.
				return nil, domainerrors.ErrProductNotFound
			}

			return nil, errors.Wrap(err, "failed to find product by ID")
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		view.Lines = append(view.Lines, entity.CartLine{
			Product:   product,
			Quantity:  entry.Quantity,
			LineTotal: lineTotal,
		})
		view.Total = view.Total.Add(lineTotal)
	}

	return view, nil
}

// ClearCart removes every entry of the session's cart.
func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.cartStore.Clear(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
