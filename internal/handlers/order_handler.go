package handlers

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vpnkmr17/Order-Microservice/internal/models"
)

type OrderHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewOrderHandler(db *gorm.DB, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		db:     db,
		logger: logger,
	}
}

// Request fields are pointers so a missing field is distinguishable
// from a zero value.
type ProductRequest struct {
	ProductName *string  `json:"product_name"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

type CreateOrderRequest struct {
	OrderDate *string           `json:"order_date"`
	Total     *float64          `json:"total"`
	SubTotal  *float64          `json:"sub_total"`
	Products  *[]ProductRequest `json:"products"`
}

type ProductResponse struct {
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type OrderResponse struct {
	OrderNumber string            `json:"order_number"`
	OrderDate   string            `json:"order_date"`
	Total       float64           `json:"total"`
	SubTotal    float64           `json:"sub_total"`
	Products    []ProductResponse `json:"products"`
}

func toOrderResponse(order models.Order) OrderResponse {

	products := make([]ProductResponse, 0, len(order.Products))

	for _, product := range order.Products {
		products = append(products, ProductResponse{
			ProductName: product.ProductName,
			Price:       product.Price,
			Quantity:    product.Quantity,
		})
	}

	return OrderResponse{
		OrderNumber: order.OrderNumber,
		OrderDate:   order.OrderDate.Format("2006-01-02"),
		Total:       order.Total,
		SubTotal:    order.SubTotal,
		Products:    products,
	}
}

// newOrderNumber returns "ORD-" plus 8 uppercase hex characters of a
// fresh UUID. Collisions are left to the unique index on order_number.
func newOrderNumber() string {
	u := uuid.New()
	return "ORD-" + strings.ToUpper(hex.EncodeToString(u[:])[:8])
}

func (h *OrderHandler) ListOrders(c *gin.Context) {

	var orders []models.Order

	if err := h.db.Preload("Products").Find(&orders).Error; err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := make([]OrderResponse, 0, len(orders))

	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}

	c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) GetOrderByNumber(c *gin.Context) {

	orderNumber := c.Param("order_number")

	var order models.Order

	err := h.db.Preload("Products").Where("order_number = ?", orderNumber).First(&order).Error

	if err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		h.logger.Error("Failed to fetch order",
			zap.String("order_number", orderNumber),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {

	var req CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if req.OrderDate == nil || req.Total == nil || req.SubTotal == nil || req.Products == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	orderDate, err := time.Parse("2006-01-02", *req.OrderDate)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	order := models.Order{
		OrderNumber: newOrderNumber(),
		OrderDate:   orderDate,
		Total:       *req.Total,
		SubTotal:    *req.SubTotal,
	}

	for _, product := range *req.Products {

		if product.ProductName == nil || product.Price == nil || product.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product missing required fields"})
			return
		}

		order.Products = append(order.Products, models.Product{
			ProductName: *product.ProductName,
			Price:       *product.Price,
			Quantity:    *product.Quantity,
		})
	}

	tx := h.db.Begin()

	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start transaction"})
		return
	}

	// Creates the order row and its product rows in one transaction.
	if err := tx.Create(&order).Error; err != nil {

		tx.Rollback()

		h.logger.Error("Failed to create order",
			zap.String("order_number", order.OrderNumber),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		h.logger.Error("Failed to commit order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("Order created",
		zap.String("order_number", order.OrderNumber),
		zap.Int("products", len(order.Products)))

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Order created successfully",
		"order_number": order.OrderNumber,
	})
}
