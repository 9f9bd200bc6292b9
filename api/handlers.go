package api

import (
	"github.com/portfolio-site/backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, adminSecret string, notifier likeNotifier) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo()),
		authHandler:    newAuthHandler(adminSecret),
		likeHandler:    newLikeHandler(notifier),
	}
}
