package api

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Deps) *routeHandlers {
	return &routeHandlers{
		archiveHandler:  newArchiveHandler(deps.Reader, deps.DB.PostRepo(), deps.DB.CommentRepo(), deps.Language, deps.BaseURL),
		adminHandler:    newAdminHandler(deps.Editor, deps.Gate, deps.Limiter),
		projectHandler:  newProjectHandler(deps.Registry),
		contactHandler:  newContactHandler(deps.Relay),
		languageHandler: newLanguageHandler(deps.Language),
	}
}
