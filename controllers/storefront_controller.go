package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/catalog"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/config"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/middlewares"
	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/models"
)

// ListOffers serves the home page strip of flagged offers.
func ListOffers(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	products, err := catalogStore.ListOffers(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListProducts serves a category page. The "offers" pseudo-category maps to
// the offer flag rather than a stored category.
func ListProducts(c *gin.Context) {
	category := c.Query("category")
	if category == "offers" {
		products, err := catalogStore.ListOffers(c.Request.Context(), 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	if !config.ValidCategory(category) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown category"})
		return
	}

	products, err := catalogStore.ListByCategory(c.Request.Context(), category, c.Query("sub_category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func GetProduct(c *gin.Context) {
	product, err := catalogStore.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// QuickOrder places a single-item order from the product page, quantity
// fixed at 1.
func QuickOrder(c *gin.Context) {
	success := false
	defer func() {
		middlewares.RecordOrderOperation("quick_order", success)
	}()

	product, err := catalogStore.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var details models.DeliveryDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := checkoutSvc.QuickOrder(c.Request.Context(), product, details)
	if err != nil {
		writeSubmissionError(c, err)
		return
	}

	success = true
	c.JSON(http.StatusCreated, gin.H{"order_id": order.ID, "total_amount": order.TotalAmount})
}
