package models

import "time"

type Order struct {
    ID          uint      `gorm:"primaryKey"`
    OrderNumber string    `gorm:"uniqueIndex;not null"`
    OrderDate   time.Time `gorm:"not null"`
    Total       float64   `gorm:"not null"`
    SubTotal    float64   `gorm:"not null"`
    Products    []Product `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type Product struct {
    ID          uint    `gorm:"primaryKey"`
    ProductName string  `gorm:"not null"`
    Price       float64 `gorm:"not null"`
    Quantity    int     `gorm:"not null"`
    OrderID     uint    `gorm:"index;not null"`
}
