package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name         string    `gorm:"not null"                  json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"      json:"email"`
	PasswordHash string    `gorm:"not null"                  json:"-"`
	PhoneNumber  string    `json:"phoneNumber"`
	Role         Role      `gorm:"not null;default:'USER'"   json:"role"`
	Address      *Address  `gorm:"foreignKey:UserID"         json:"-"`
	CreatedAt    time.Time `gorm:"not null"                  json:"createdAt"`
}

// Address is the single shipping address of a user.
type Address struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null"      json:"userId"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zipCode"`
	Country   string    `json:"country"`
	CreatedAt time.Time `gorm:"not null"                  json:"createdAt"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name      string    `gorm:"uniqueIndex;not null"      json:"name"`
	CreatedAt time.Time `gorm:"not null"                  json:"createdAt"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"      json:"id"`
	Name        string          `gorm:"not null"                      json:"name"`
	Description string          `gorm:"not null"                      json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"   json:"price"`
	CategoryID  *uint           `gorm:"index"                         json:"categoryId"`
	Category    *Category       `gorm:"foreignKey:CategoryID"         json:"-"`
	CreatedAt   time.Time       `gorm:"not null"                      json:"createdAt"`
}
