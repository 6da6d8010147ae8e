package main

import (
	"log"
	"net/http"

	"github.com/yhzion/comment-stripper-mcp/internal/server"
)

func main() {
	cfg, err := server.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv := server.New(cfg)

	log.Printf("comment stripper listening on %s (env=%s, workers=%d)", cfg.Port, cfg.Env, cfg.Workers)
	if err := http.ListenAndServe(cfg.Port, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
