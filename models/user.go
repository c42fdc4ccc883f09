package models

import "time"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	Email     string  `gorm:"unique;not null" json:"email"`
	Phone     string  `json:"phone"`
	Name      string  `json:"name"`
	Role      Role    `gorm:"type:VARCHAR(10);default:'buyer'" json:"role"`
	Address   Address `gorm:"embedded"`          // Embeds address fields directly
	Cart      Cart    `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders    []Order `gorm:"foreignKey:BuyerID;constraint:OnDelete:SET NULL" json:"orders"`
	CreatedAt time.Time
}

// Address model embedded in User
type Address struct {
	Country    string
	State      string
	City       string
	Street     string
	PostalCode string
}
