package handlers

import (
	"net/http"

	"github.com/agentbench/agentbench-api/internal/models"
	"github.com/gin-gonic/gin"
)

// TaskTypes lists the supported task kinds.
func TaskTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": models.TaskCatalog})
}

// Providers lists the supported provider kinds.
func Providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": models.ProviderCatalog})
}
