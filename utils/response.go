package utils

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Every response carries this envelope: {success, data?, error?, message?}.

type ErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Paginated wraps a page of results with its pagination metadata.
type Paginated struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: msg})
}

func Page(c *gin.Context, data any, p Pagination) {
	c.JSON(http.StatusOK, Paginated{Success: true, Data: data, Pagination: p})
}

// Fail maps err to the envelope. Non-AppError values are reported as a
// generic 500; their text reaches the client only outside production.
func Fail(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Internal("Internal server error", err)
	}

	details := appErr.Details
	if appErr.Err != nil && os.Getenv("APP_ENV") != "production" {
		details = appErr.Err.Error()
	}

	c.JSON(appErr.Code, Envelope{
		Success: false,
		Error:   &ErrorBody{Message: appErr.Message, Details: details},
	})
}
