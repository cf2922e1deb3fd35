// Command viewdb dumps the orders and products tables to the console.
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/vpnkmr17/Order-Microservice/configs"
	"github.com/vpnkmr17/Order-Microservice/internal/db"
	"github.com/vpnkmr17/Order-Microservice/internal/models"
)

func main() {

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := viewAllOrders(conn); err != nil {
		log.Fatalf("Failed to read orders: %v", err)
	}

	if err := viewAllProducts(conn); err != nil {
		log.Fatalf("Failed to read products: %v", err)
	}
}

func viewAllOrders(conn *gorm.DB) error {

	fmt.Println("\n=== All Orders ===")

	var orders []models.Order

	if err := conn.Preload("Products").Find(&orders).Error; err != nil {
		return err
	}

	if len(orders) == 0 {
		fmt.Println("No orders found in the database.")
		return nil
	}

	for _, order := range orders {
		fmt.Printf("\nOrder Number: %s\n", order.OrderNumber)
		fmt.Printf("Order Date: %s\n", order.OrderDate.Format("2006-01-02"))
		fmt.Printf("Total: $%v\n", order.Total)
		fmt.Printf("Sub-Total: $%v\n", order.SubTotal)
		fmt.Println("\nProducts:")

		if len(order.Products) == 0 {
			fmt.Println("  No products in this order.")
			continue
		}

		for _, product := range order.Products {
			fmt.Printf("  - %s: $%v x %d\n", product.ProductName, product.Price, product.Quantity)
		}
	}

	return nil
}

func viewAllProducts(conn *gorm.DB) error {

	fmt.Println("\n=== All Products ===")

	var products []models.Product

	if err := conn.Find(&products).Error; err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Println("No products found in the database.")
		return nil
	}

	for _, product := range products {
		fmt.Printf("Product: %s, Price: $%v, Quantity: %d, Order ID: %d\n",
			product.ProductName, product.Price, product.Quantity, product.OrderID)
	}

	return nil
}
