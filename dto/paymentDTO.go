package dto

type RecordPaymentRequest struct {
	OrderID       string  `json:"orderId" binding:"required"`
	ProductID     string  `json:"product_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Email         string  `json:"email"`
	TransactionID string  `json:"transactionId"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
