// Package handlers contains HTTP request handlers for the greeter service.
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/greeter-service/internal/greeting"
)

// Error messages returned in ErrorResponse bodies
const (
	MsgNameRequired = "Name is required."
	MsgInvalidBody  = "Request body must be a JSON object with a string name."
	MsgBadEncoding  = "Request body could not be decompressed."

	MsgNotFound         = "Not found."
	MsgMethodNotAllowed = "Method not allowed."
	MsgTooManyRequests  = "Too many requests."
)

// GreetRequest represents the greet request body. An absent name decodes as "".
type GreetRequest struct {
	Name string `json:"name"`
}

// GreetResponse represents a successful greeting
type GreetResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// GreetHandler validates the posted name and responds with a greeting.
// POST /api/greet
func GreetHandler(c *gin.Context) {
	var req GreetRequest

	// A missing or empty body is treated like {}
	if c.Request.Body != nil {
		data, err := c.GetRawData()
		if err != nil {
			c.PureJSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidBody})
			return
		}
		// json.Unmarshal rejects trailing data after the object
		if len(bytes.TrimSpace(data)) > 0 {
			if err := json.Unmarshal(data, &req); err != nil {
				c.PureJSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidBody})
				return
			}
		}
	}

	message, err := greeting.Greet(req.Name)
	if err != nil {
		c.PureJSON(http.StatusBadRequest, ErrorResponse{Error: MsgNameRequired})
		return
	}

	c.PureJSON(http.StatusOK, GreetResponse{Message: message})
}
