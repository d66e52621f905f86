package surveyd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/speleotech/surveyd/config"
	"github.com/speleotech/surveyd/store"
)

var (
	server *http.Server
	db     *store.Store
)

func StartServer(st *store.Store) {
	db = st

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("POST /api/reduce", handleReduce)
	mux.HandleFunc("POST /api/plan-view", handlePlanView)
	mux.HandleFunc("POST /api/surveys", handleSaveSurvey)
	mux.HandleFunc("GET /api/surveys", handleListSurveys)
	mux.HandleFunc("GET /api/surveys/{id}", handleGetSurvey)

	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
	if db != nil {
		if err := db.Close(); err != nil {
			log.Printf("database close error: %v", err)
		}
	}
}
