package handlers

import (
	"fmt"
	"net/http"

	"eyetrends-pos/internal/audit"
	"eyetrends-pos/internal/database"
	"eyetrends-pos/internal/middleware"
	"eyetrends-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// GetConfig returns the feature toggles. Every authenticated user may
// read them; only admins may change them.
func GetConfig(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := database.Config(c.Request.Context(), store)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// UpdateConfig replaces the toggles and records the change.
func UpdateConfig(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cfg models.AppConfig
		if err := c.ShouldBindJSON(&cfg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		actor := middleware.CurrentUser(c)
		ctx := c.Request.Context()

		err := store.Transact(ctx, func(tx database.Store) error {
			if err := database.SaveConfig(ctx, tx, cfg); err != nil {
				return err
			}
			return audit.Append(ctx, tx, actor, models.AuditUpdate, models.EntityConfig,
				fmt.Sprintf("Updated settings: productImages=%t, geminiInsights=%t",
					cfg.EnableProductImages, cfg.EnableGeminiInsights))
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// ResetData wipes inventory, sales and audit logs, then records the reset
// as the first entry of the fresh log. Accounts and settings survive.
func ResetData(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.CurrentUser(c)
		ctx := c.Request.Context()

		err := store.Transact(ctx, func(tx database.Store) error {
			if err := database.ClearBusinessData(ctx, tx); err != nil {
				return err
			}
			return audit.Append(ctx, tx, actor, models.AuditDelete, models.EntitySystem,
				"Performed a full business data reset (Inventory, Sales, and Logs).")
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Business data has been reset"})
	}
}
