package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers every endpoint. Reads are public. Experience
// update/delete and every skill mutation stay public unless strictAuth is set.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, strictAuth bool) {
	requireAuth := authMiddleware.authenticate
	legacyOpen := authMiddleware.gate(strictAuth)

	r.Get("/health", handlers.overviewHandler.health())
	r.Get("/overview", handlers.overviewHandler.getOverview())

	// Auth
	r.Post("/auth/login", handlers.authHandler.login())
	r.Post("/auth/logout", handlers.authHandler.logout())
	r.With(requireAuth).Get("/auth/me", handlers.authHandler.me())
	r.With(requireAuth).Put("/auth/password", handlers.authHandler.changePassword())

	// Profile
	r.Get("/profile", handlers.profileHandler.getProfile())
	r.With(requireAuth).Put("/profile", handlers.profileHandler.updateProfile())

	// Projects
	r.Get("/projects", handlers.projectHandler.getAllProjects())
	r.Get("/projects/{id}", handlers.projectHandler.getProject())
	r.With(requireAuth).Post("/projects", handlers.projectHandler.createProject())
	r.With(requireAuth).Put("/projects/{id}", handlers.projectHandler.updateProject())
	r.With(requireAuth).Delete("/projects/{id}", handlers.projectHandler.deleteProject())

	// Tags
	r.Get("/tags", handlers.tagHandler.getAllTags())
	r.With(requireAuth).Post("/tags", handlers.tagHandler.createTag())
	r.With(requireAuth).Put("/tags/{id}", handlers.tagHandler.updateTag())
	r.With(requireAuth).Delete("/tags/{id}", handlers.tagHandler.deleteTag())

	// Experiences
	r.Get("/experiences", handlers.experienceHandler.getAllExperiences())
	r.With(requireAuth).Post("/experiences", handlers.experienceHandler.createExperience())
	r.With(legacyOpen).Put("/experiences/{id}", handlers.experienceHandler.updateExperience())
	r.With(legacyOpen).Delete("/experiences/{id}", handlers.experienceHandler.deleteExperience())

	// Skills
	r.Get("/skills", handlers.skillHandler.getAllSkills())
	r.With(legacyOpen).Post("/skills", handlers.skillHandler.createSkill())
	r.With(legacyOpen).Put("/skills/{id}", handlers.skillHandler.updateSkill())
	r.With(legacyOpen).Delete("/skills/{id}", handlers.skillHandler.deleteSkill())

	// Galleries
	r.Get("/galleries", handlers.galleryHandler.getAllGalleries())
	r.With(requireAuth).Post("/galleries", handlers.galleryHandler.createGallery())
	r.With(requireAuth).Put("/galleries/{id}", handlers.galleryHandler.updateGallery())
	r.With(requireAuth).Delete("/galleries/{id}", handlers.galleryHandler.deleteGallery())

	// Certificates
	r.Get("/certificates", handlers.certificateHandler.getAllCertificates())
	r.With(requireAuth).Post("/certificates", handlers.certificateHandler.createCertificate())
	r.With(requireAuth).Put("/certificates/{id}", handlers.certificateHandler.updateCertificate())
	r.With(requireAuth).Delete("/certificates/{id}", handlers.certificateHandler.deleteCertificate())

	if handlers.uploadHandler != nil {
		r.With(requireAuth).Post("/uploads", handlers.uploadHandler.upload())
	}
}
