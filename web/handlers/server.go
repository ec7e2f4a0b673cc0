package handlers

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	ds "github.com/starfederation/datastar-go/datastar"
	"golang.org/x/sync/errgroup"
	"launchdash/web"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

type Server struct {
	renderer Renderer
	handler  *chi.Mux
}

func NewServer(renderer Renderer) *Server {
	s := &Server{
		renderer: renderer,
	}

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		// Only fails if the embed pattern is broken.
		panic(err)
	}

	handler := chi.NewRouter()
	handler.Use(middleware.Logger)
	handler.Use(middleware.Recoverer)
	handler.Get("/", s.IndexHandler)
	handler.Get("/updates", s.UpdatesHandler)
	handler.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	for path, uiHandler := range renderer.Handlers() {
		handler.Post(path, uiHandler)
	}

	s.handler = handler

	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Printf("listening on %s …", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
		defer cancel()
		log.Printf("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

// IndexHandler is the main entrypoint for the UI
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	clientID := getClientID(w, r)
	err := s.renderer.Templates().ExecuteTemplate(w, "index", s.renderer.Data(clientID))
	if err != nil {
		log.Printf("couldn't execute template for index %s", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// UpdatesHandler streams chart patches to the client until it disconnects.
func (s *Server) UpdatesHandler(w http.ResponseWriter, r *http.Request) {
	clientID := getClientID(w, r)
	updates, cancel := s.renderer.Subscribe(clientID)
	defer func() { cancel() }()

	sse := ds.NewSSE(w, r)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-updates:
			if !ok {
				// The session was dropped, follow the client to its new one.
				cancel()
				updates, cancel = s.renderer.Subscribe(clientID)
				continue
			}
			err := s.renderer.PatchOnEvent(sse, event)
			if err != nil {
				log.Printf("error patching %s: %s", event.Output, err)
				return
			}
		}
	}
}
