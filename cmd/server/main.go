package main

import (
	"log"

	"elevation_mentorship_go/config"
	"elevation_mentorship_go/db"
	"elevation_mentorship_go/handlers"
	"elevation_mentorship_go/middleware"
	"elevation_mentorship_go/models"
	"elevation_mentorship_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the local view-counter database. The site still serves if
	// it cannot be opened; counters fall back to memory.
	if err := db.InitializeViews(cfg.ViewsDBPath, cfg.Environment); err != nil {
		log.Printf("[WARNING] Failed to initialize views database: %v", err)
	} else {
		defer db.CloseViews()
		if err := db.AutoMigrateViews(&models.VideoView{}); err != nil {
			log.Fatalf("Failed to run views migrations: %v", err)
		}
	}

	// Asset cache-busting versions
	middleware.InitAssetVersions()

	// Services
	viewStore := services.InitializeViewStore(db.Views)
	contactService := services.NewContactService(
		services.NewMongoContactStore(cfg),
		services.NewResendMailer(cfg),
		cfg.AdminEmail,
	)
	vimeoClient := services.NewVimeoClient()

	// Page templates
	renderer, err := handlers.NewTemplateRenderer("templates")
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	h := handlers.New(cfg, contactService, vimeoClient, viewStore, renderer)

	// Create Echo instance
	e := echo.New()
	e.Renderer = renderer

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Static files
	e.Static("/static", "static")

	// Pages
	e.GET("/", h.LandingHandler)
	e.GET("/about", h.AboutHandler)
	e.GET("/testimonials", h.TestimonialsHandler)

	// Contact form submission
	e.POST("/api/contact", h.ContactPostHandler)

	// Testimonial videos
	e.GET("/api/videos", h.GetVideosHandler)
	e.POST("/api/videos/:id/view", h.RecordViewHandler)
	e.GET("/api/placeholder/:id", h.PlaceholderHandler)

	// HTMX partials
	e.GET("/htmx/faq", h.FAQPartialHandler)

	// SEO
	e.GET("/sitemap.xml", h.SitemapHandler)
	e.GET("/robots.txt", h.RobotsHandler)

	// Metrics
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
