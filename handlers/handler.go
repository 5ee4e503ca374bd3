package handlers

import (
	"elevation_mentorship_go/config"
	"elevation_mentorship_go/services"
)

// Handler carries the services the route handlers depend on. Tests inject
// fakes for the store-backed pieces.
type Handler struct {
	Cfg      *config.Config
	Contact  *services.ContactService
	Vimeo    *services.VimeoClient
	Views    services.ViewStore
	Renderer *TemplateRenderer
}

func New(cfg *config.Config, contact *services.ContactService, vimeo *services.VimeoClient, views services.ViewStore, renderer *TemplateRenderer) *Handler {
	return &Handler{
		Cfg:      cfg,
		Contact:  contact,
		Vimeo:    vimeo,
		Views:    views,
		Renderer: renderer,
	}
}
