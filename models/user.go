package models

import "time"

type User struct {
	ID        string  `gorm:"primaryKey" json:"id"` // Firebase UID
	Email     string  `gorm:"unique;not null" json:"email"`
	Phone     string  `json:"phone"`
	Name      string  `json:"name"`
	Picture   string  `json:"picture"`
	Provider  string  `json:"provider"`
	Address   Address `gorm:"embedded;embeddedPrefix:addr_" json:"address"` // default shipping address
	Cart      Cart    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders    []Order `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders"`
	CreatedAt time.Time `json:"created_at"`
}

// Address model embedded in User and snapshotted onto orders
type Address struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}
