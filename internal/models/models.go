package models

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

const (
	NotificationTypeInfo  = "info"
	NotificationTypeOrder = "order"
)

// StringList is stored as text[] on postgres and as the same array literal in a text
// column elsewhere.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	return pq.StringArray(s).Value()
}

func (s *StringList) Scan(src any) error {
	return (*pq.StringArray)(s).Scan(src)
}

func (StringList) GormDataType() string {
	return "text"
}

func (StringList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

type Project struct {
	ID              uint       `gorm:"primaryKey;autoIncrement"   json:"id"`
	Subject         string     `gorm:"size:100;not null"          json:"subject"`
	College         string     `gorm:"size:100"                   json:"college"`
	Topic           string     `gorm:"size:255;not null"          json:"topic"`
	Price           int64      `gorm:"not null"                   json:"price"`
	File            string     `gorm:"size:255"                   json:"file"`
	Downloads       int64      `gorm:"not null;default:0"         json:"downloads"`
	Pages           *int       `                                  json:"pages"`
	Description     string     `                                  json:"description"`
	PackageIncludes string     `gorm:"column:packageincludes"     json:"packageincludes"`
	PrimaryPhoto    string     `                                  json:"primary_photo"`
	OtherPhotos     StringList `                                  json:"other_photos"`
	CreatedAt       time.Time  `                                  json:"created_at"`
}

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	FirstName string    `gorm:"size:100"                  json:"first_name"`
	LastName  string    `gorm:"size:100"                  json:"last_name"`
	Name      string    `gorm:"size:200"                  json:"name"`
	Email     string    `gorm:"size:100;uniqueIndex"      json:"email"`
	College   string    `gorm:"size:100"                  json:"college"`
	IsBanned  bool      `gorm:"not null;default:false"    json:"is_banned"`
	CreatedAt time.Time `                                 json:"created_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"      json:"id"`
	ProjectID uint      `gorm:"not null;index"                json:"project_id"`
	Project   *Project  `gorm:"constraint:OnDelete:CASCADE"   json:"-"`
	Quantity  int       `gorm:"not null;default:1"            json:"quantity"`
	SessionID string    `gorm:"size:100;index"                json:"session_id"`
	CreatedAt time.Time `                                     json:"created_at"`
}

// CartItemView is a cart row joined with the project it points at.
type CartItemView struct {
	ID        uint   `json:"id"`
	ProjectID uint   `json:"project_id"`
	Quantity  int    `json:"quantity"`
	Topic     string `json:"topic"`
	Price     int64  `json:"price"`
	Subject   string `json:"subject"`
	College   string `json:"college"`
}

type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement"       json:"id"`
	UserID          *uint       `gorm:"index"                          json:"user_id"`
	TotalAmount     int64       `gorm:"not null"                       json:"total_amount"`
	Status          OrderStatus `gorm:"size:50;not null;index"         json:"status"`
	CustomerName    string      `gorm:"size:100"                       json:"customer_name"`
	CustomerEmail   string      `gorm:"size:100"                       json:"customer_email"`
	CustomerPhone   string      `gorm:"size:20"                        json:"customer_phone"`
	CustomerAddress string      `                                      json:"customer_address"`
	Notes           string      `                                      json:"notes"`
	CreatedAt       time.Time   `                                      json:"created_at"`
	UpdatedAt       time.Time   `                                      json:"updated_at"`
}

// OrderItem keeps the price the customer saw at checkout, independent of later
// catalog changes.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"      json:"id"`
	OrderID   uint     `gorm:"not null;index"                json:"order_id"`
	Order     *Order   `gorm:"constraint:OnDelete:CASCADE"   json:"-"`
	ProjectID uint     `gorm:"not null;index"                json:"project_id"`
	Project   *Project `gorm:"constraint:OnDelete:CASCADE"   json:"-"`
	Quantity  int      `gorm:"not null;default:1"            json:"quantity"`
	Price     int64    `gorm:"not null"                      json:"price"`
}

type OrderItemView struct {
	ID        uint   `json:"id"`
	OrderID   uint   `json:"order_id"`
	ProjectID uint   `json:"project_id"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	Topic     string `json:"topic"`
	Subject   string `json:"subject"`
	College   string `json:"college"`
}

type OrderDetails struct {
	Order
	Items []OrderItemView `json:"items"`
}

type OrderStats struct {
	Pending      int64 `json:"pending"`
	Confirmed    int64 `json:"confirmed"`
	Cancelled    int64 `json:"cancelled"`
	TotalRevenue int64 `json:"totalRevenue"`
}

type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"   json:"id"`
	UserID    *uint     `gorm:"index"                      json:"user_id"`
	Title     string    `gorm:"size:255;not null"          json:"title"`
	Message   string    `                                  json:"message"`
	Type      string    `gorm:"size:50;not null"           json:"type"`
	IsRead    bool      `gorm:"not null;default:false"     json:"is_read"`
	CreatedAt time.Time `                                  json:"created_at"`
}

// All lists every table model in dependency order.
func All() []any {
	return []any{
		&Project{},
		&User{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&Notification{},
	}
}
