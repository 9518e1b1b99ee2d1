package transport

import "time"

// Cart session carriers shared by the handlers and middleware.
const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "cart_session"
)

type CreateProjectRequest struct {
	Subject         string   `json:"subject"`
	College         string   `json:"college"`
	Topic           string   `json:"topic"`
	Price           int64    `json:"price"`
	File            string   `json:"file"`
	Pages           *int     `json:"pages"`
	Description     string   `json:"description"`
	PackageIncludes string   `json:"packageincludes"`
	PrimaryPhoto    string   `json:"primary_photo"`
	OtherPhotos     []string `json:"other_photos"`
}

type AddToCartRequest struct {
	ProjectID uint `json:"project_id"`
	Quantity  int  `json:"quantity"`
}

type OrderItemRequest struct {
	ProjectID uint  `json:"project_id"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	TotalAmount     *int64             `json:"total_amount"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	Notes           string             `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateNotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	College   string `json:"college"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
