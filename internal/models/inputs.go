package models

// CreateProductInput is the payload accepted when admitting a new product.
// Stock is a pointer so that an omitted quantity can default to zero.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Price       float64 `json:"price" validate:"required"`
	Stock       *int    `json:"stock"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url,max=500"`
}

// UpdateProductInput is a partial update. A nil field was not supplied and
// leaves the stored value alone.
type UpdateProductInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,url,max=500"`
}

// Reprices reports whether the update touches a field that drives pricing.
func (in UpdateProductInput) Reprices() bool {
	return in.Price != nil || in.Stock != nil
}

// CreateUserInput is the payload accepted when creating a user record.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=6,max=72"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
}

// UpdateUserInput is a partial user update.
type UpdateUserInput struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	IsActive *bool   `json:"isActive"`
}
