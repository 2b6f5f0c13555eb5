package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSON200(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

func JSON201(c *gin.Context, body interface{}) {
	c.JSON(http.StatusCreated, body)
}

func JSON400(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func JSON404(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// JSON500 reports a store or connectivity fault. The raw driver message is
// included in the body under "message".
func JSON500(c *gin.Context, message string, err error) {
	body := gin.H{"error": message}
	if err != nil {
		body["message"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// JSON500Details is the object-storage variant of JSON500; those responses
// historically carry the driver message under "details".
func JSON500Details(c *gin.Context, message string, err error) {
	body := gin.H{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
