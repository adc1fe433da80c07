package model

import "time"

type Customer struct {
	CustomerID  uint      `gorm:"primaryKey"`
	FirstName   string    `gorm:"not null;type:varchar(50)"`
	LastName    string    `gorm:"not null;type:varchar(50)"`
	Email       string    `gorm:"unique;not null;type:varchar(100)"`
	PhoneNumber string    `gorm:"not null;type:varchar(50)"`
	DateOfBirth time.Time `gorm:"null"`
	IsActive    bool      `gorm:"not null;default:true"`
	Addresses   []Address `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
	Carts       []Cart    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	BaseModel
}

type Address struct {
	AddressID    uint   `gorm:"primaryKey"`
	CustomerID   uint   `gorm:"not null;index"` // 外鍵，關聯到 Customer
	AddressLine1 string `gorm:"not null;type:varchar(255)"`
	AddressLine2 string `gorm:"type:varchar(255)"`
	City         string `gorm:"not null;type:varchar(100)"`
	State        string `gorm:"type:varchar(100)"`
	PostalCode   string `gorm:"not null;type:varchar(20)"`
	Country      string `gorm:"not null;type:varchar(100)"`
	BaseModel
}
