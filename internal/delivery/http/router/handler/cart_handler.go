package handler

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/http/middleware"
	"shop/internal/delivery/http/response"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// isAjax reports whether the request came from a frontend fetch call.
func isAjax(c echo.Context) bool {
	return c.Request().Header.Get("X-Requested-With") == "XMLHttpRequest"
}

// redirectBack sends a see-other redirect to the Referer, falling back
// to the product listing.
func redirectBack(c echo.Context) error {
	target := c.Request().Referer()
	if target == "" {
		target = "/products"
	}

	return c.Redirect(http.StatusSeeOther, target)
}

// ViewCart handles rendering the session's cart with live prices.
func (h *CartHandler) ViewCart(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION", "Missing session cookie")
	}

	cart, err := h.cartUC.ViewCart(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// AddToCart handles adding one unit of a product to the session's cart.
// Ajax requests get a JSON summary; browser form posts are redirected back.
func (h *CartHandler) AddToCart(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION", "Missing session cookie")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	output, err := h.cartUC.AddToCart(c.Request().Context(), sessionID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if isAjax(c) {
		return c.JSON(http.StatusOK, map[string]any{
			"success":    true,
			"cart_total": output.CartTotal,
			"message":    output.ProductName + " added to cart",
		})
	}

	return redirectBack(c)
}

// RemoveFromCart handles dropping a product from the session's cart.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION", "Missing session cookie")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.cartUC.RemoveFromCart(c.Request().Context(), sessionID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	if isAjax(c) {
		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"message": "Item removed from cart",
		})
	}

	return c.Redirect(http.StatusSeeOther, "/cart")
}
