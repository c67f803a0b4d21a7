package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/services"
)

// AddToCartRequest is the request body for POST /cart/add.
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CartHandler handles HTTP requests for the cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/add", h.HandleAddToCart)
	cartRoutes.Delete("/:productId", h.HandleRemoveFromCart)
}

// HandleGetCart returns the full cart with joined products and totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart()
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"cart": cart,
	})
}

// HandleAddToCart puts a product in the cart, overwriting the quantity of
// an existing line for the same product.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return respondError(c, addToCartValidationError(validationErrors))
	}

	cart, err := h.service.AddToCart(req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product added to cart successfully",
		"cart":    cart,
	})
}

// HandleRemoveFromCart deletes the cart line for a product.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	productID := c.Params("productId")
	cart, err := h.service.RemoveFromCart(productID)
	if err != nil {
		log.Printf("Error removing product %s from cart: %v", productID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product removed from cart successfully",
		"cart":    cart,
	})
}

// addToCartValidationError maps struct validation failures onto the same
// error values the service layer uses, so the wire message is identical
// whichever layer rejects the request first.
func addToCartValidationError(errs validator.ValidationErrors) error {
	for _, e := range errs {
		if e.Field() == "ProductID" {
			return services.ErrProductIDRequired
		}
	}
	return services.ErrQuantityNotPositive
}
