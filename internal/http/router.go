package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"voicenote/internal/handlers"
	"voicenote/internal/service"
	"voicenote/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DB           *sql.DB
	Flow         handlers.Handshake
	Credentials  handlers.CredentialSource
	Notes        storage.NoteStore
	Destinations service.DestinationService
	Sync         service.SyncService
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	authHandler := handlers.NewAuthHandler(deps.Flow, deps.Credentials)
	noteHandler := handlers.NewNoteHandler(deps.Notes)
	destinationHandler := handlers.NewDestinationHandler(deps.Destinations)
	syncHandler := handlers.NewSyncHandler(deps.Sync, deps.Notes)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Credentials)

	// The redirect URI is registered with the OAuth provider, so it lives
	// outside the /api prefix.
	r.Get("/auth/callback", authHandler.Callback)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/connect", authHandler.Connect)
			r.Post("/cancel", authHandler.Cancel)
			r.Post("/disconnect", authHandler.Disconnect)
			r.Get("/status", authHandler.Status)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", noteHandler.List)
			r.Post("/", noteHandler.Create)
			r.Get("/{id}", noteHandler.Get)
			r.Put("/{id}", noteHandler.Update)
			r.Delete("/{id}", noteHandler.Delete)
			r.Post("/{id}/sync", syncHandler.SyncOne)
		})

		r.Get("/destinations", destinationHandler.List)
		r.Post("/destinations/select", destinationHandler.Select)

		r.Post("/sync", syncHandler.SyncAll)

		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
