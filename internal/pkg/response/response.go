package response

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/pkg/rules"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithWarnings attaches advisory warnings to a successful write.
// Warnings never change the status code.
func SuccessWithWarnings(c *gin.Context, statusCode int, data interface{}, warnings []rules.Warning) {
	if len(warnings) == 0 {
		Success(c, statusCode, data)
		return
	}
	c.JSON(statusCode, gin.H{
		"success":  true,
		"data":     data,
		"warnings": warnings,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
