package domain

import "time"

// Order and OrderItem exist in the schema for upcoming billing work. No
// handler reads or writes them yet; cmd/migrate creates the tables so the
// referential integrity to ApiUsers is in place from day one.
type Order struct {
	TransactionID int64 `json:"transaction_id" gorm:"column:transaction_id;primaryKey"`

	APIID string  `json:"api_id" gorm:"column:api_id;size:255;not null"`
	User  ApiUser `json:"-" gorm:"foreignKey:APIID;references:APIID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Order) TableName() string { return "ApiOrders" }

type OrderItem struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	TransactionID int64 `json:"transaction_id" gorm:"column:transaction_id;not null"`
	Order         Order `json:"-" gorm:"foreignKey:TransactionID;references:TransactionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Name     string  `json:"name" gorm:"size:255;not null"`
	Price    float64 `json:"price" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
}

func (OrderItem) TableName() string { return "ApiOrderItems" }
