package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler          pageHandler
	authHandler          authHandler
	profileHandler       profileHandler
	projectHandler       projectHandler
	socialLinkHandler    collectionHandler
	experienceHandler    collectionHandler
	educationHandler     collectionHandler
	certificationHandler collectionHandler
	storageHandler       storageHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// StatusResponse is returned by endpoints that have nothing else to report
type StatusResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"project deleted successfully"`
}
