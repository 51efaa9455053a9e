package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

// TabelogMapHttpServer serves the venue API and shuts down gracefully on
// SIGINT/SIGTERM.
type TabelogMapHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewTabelogMapHttpServer(router *Router, muxRouter *mux.Router, addr string) *TabelogMapHttpServer {
	return &TabelogMapHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
	}
}

// Start registers the routes, serves until a termination signal arrives,
// then drains in-flight requests.
func (s *TabelogMapHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[TabelogMapHttpServer] Listening on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[TabelogMapHttpServer] ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("[TabelogMapHttpServer] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[TabelogMapHttpServer] Forced to shutdown: %v", err)
	}

	log.Println("[TabelogMapHttpServer] Server exiting")
}
