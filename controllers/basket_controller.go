package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/basket"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/catalog"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/middlewares"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/models"
)

const sessionCookie = "basket_session"

// sessionBasket resolves the caller's basket from the session cookie,
// minting a new session on first contact.
func sessionBasket(c *gin.Context) *basket.Basket {
	sessionID, err := c.Cookie(sessionCookie)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie(sessionCookie, sessionID, 60*60*24*30, "/", "", false, true)
	}
	return baskets.Get(sessionID)
}

type basketView struct {
	Items      []basket.Line `json:"items"`
	TotalItems int           `json:"total_items"`
	TotalPrice float64       `json:"total_price"`
}

func viewOf(b *basket.Basket) basketView {
	items, price := b.Totals()
	return basketView{Items: b.Lines(), TotalItems: items, TotalPrice: price}
}

func GetBasket(c *gin.Context) {
	c.JSON(http.StatusOK, viewOf(sessionBasket(c)))
}

// AddBasketItem adds one unit of a product. The unit price is resolved
// from the catalog now and captured for the lifetime of the line.
func AddBasketItem(c *gin.Context) {
	var request struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := catalogStore.GetByID(c.Request.Context(), request.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	b := sessionBasket(c)
	b.AddItem(product.ID, product.Name, product.EffectivePrice(), product.ImageURL)
	middlewares.RecordBasketOperation("add")
	c.JSON(http.StatusOK, viewOf(b))
}

// UpdateBasketItem replaces a line's quantity. Zero or negative removes the
// line, so the quantity field is a pointer to let 0 through binding.
func UpdateBasketItem(c *gin.Context) {
	var request struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b := sessionBasket(c)
	b.UpdateQuantity(c.Param("productId"), *request.Quantity)
	middlewares.RecordBasketOperation("update")
	c.JSON(http.StatusOK, viewOf(b))
}

func RemoveBasketItem(c *gin.Context) {
	b := sessionBasket(c)
	b.RemoveItem(c.Param("productId"))
	middlewares.RecordBasketOperation("remove")
	c.JSON(http.StatusOK, viewOf(b))
}

func ClearBasket(c *gin.Context) {
	b := sessionBasket(c)
	b.Clear()
	middlewares.RecordBasketOperation("clear")
	c.JSON(http.StatusOK, viewOf(b))
}

// Checkout submits the session basket with the posted delivery details.
// Validation is owned by the workflow, so the payload binds loosely here.
func Checkout(c *gin.Context) {
	success := false
	defer func() {
		middlewares.RecordOrderOperation("checkout", success)
	}()

	var details models.DeliveryDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b := sessionBasket(c)
	order, err := checkoutSvc.Checkout(c.Request.Context(), b, details)
	if err != nil {
		writeSubmissionError(c, err)
		return
	}

	success = true
	c.JSON(http.StatusCreated, gin.H{"order_id": order.ID, "total_amount": order.TotalAmount})
}
