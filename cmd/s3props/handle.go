package main

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"s3props"
	"s3props/config"
)

func HealthHandle() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// PropertiesHandle lists the loaded key names. Values are never exposed.
func PropertiesHandle(src s3props.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		keys := src.Keys()
		sort.Strings(keys)
		c.JSON(http.StatusOK, gin.H{
			"source": src.Name(),
			"count":  len(keys),
			"keys":   keys,
		})
	}
}

func GreetingHandle(cfg config.Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"greeting": cfg.Greeting})
	}
}
