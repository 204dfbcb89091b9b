package dto

type CreateOrderRequest struct {
	ProductID     string  `json:"product_id" binding:"required"`
	ProductName   string  `json:"product_name"`
	ResellPrice   float64 `json:"resell_price"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
}
