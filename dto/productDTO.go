package dto

type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Image         string  `json:"image"`
	SellerName    string  `json:"seller_name"`
	CategoryID    string  `json:"category_id" binding:"required"`
	ResellPrice   float64 `json:"resell_price" binding:"required"`
	OriginalPrice float64 `json:"original_price"`
	YearsUsed     int     `json:"years_used"`
	Location      string  `json:"location"`
	Phone         string  `json:"phone"`
}

type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" binding:"required"`
}
