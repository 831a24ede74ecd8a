package api

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler        authHandler
	profileHandler     profileHandler
	projectHandler     projectHandler
	tagHandler         tagHandler
	experienceHandler  experienceHandler
	skillHandler       skillHandler
	galleryHandler     galleryHandler
	certificateHandler certificateHandler
	overviewHandler    overviewHandler
	uploadHandler      *uploadHandler
}
