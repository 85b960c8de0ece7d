package response

import (
	"log"

	"github.com/gin-gonic/gin"
)

// Response represents a standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error sends an error response; the underlying error is logged, not
// exposed to the client.
func Error(c *gin.Context, code int, message string, err error) {
	if err != nil {
		log.Printf("[API] %s %s: %s: %v", c.Request.Method, c.Request.URL.Path, message, err)
	}
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string, err error) {
	Error(c, 400, message, err)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message, nil)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string, err error) {
	Error(c, 500, message, err)
}
