package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	authHandler    authHandler
	likeHandler    likeHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
