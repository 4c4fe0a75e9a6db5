package handlers

// ProductRequest carries the writable product fields. Price and Quantity are
// pointers so a missing field can be told apart from an explicit zero.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

type QuantitySetRequest struct {
	Quantity *int `json:"quantity"`
}

type QuantityAdjustmentRequest struct {
	Delta *int `json:"delta"` // positive adds stock, negative deducts
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PictureResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
}
