package request

// CartAddRequest is the payload for staging a product in the cart.
type CartAddRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}
