// cgol: Word-Seeded Game of Life Simulator
// Copyright (C) 2026  cgol contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Command cgol-server runs the request/response API described in the
// specification's TransportShim: one endpoint mapping a word to a
// GameResult, backed by a write-through bbolt cache.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cgol/internal/cache"
	"cgol/internal/config"
	"cgol/internal/handler"
	"cgol/internal/monitor"
	"cgol/internal/transport"
)

func main() {
	cfg := config.Load()

	bindAddr := flag.String("addr", cfg.BindAddress, "HTTP bind address")
	cacheDB := flag.String("cache-db", cfg.CacheDBPath, "path to the result cache database file")
	flag.Parse()

	var store cache.ResultCache
	if boltCache, err := cache.NewBoltCache(*cacheDB); err != nil {
		// CacheUnavailable: the handler must still compute and return
		// results, logging the degraded mode, so the server starts with a
		// nil store rather than failing to boot.
		log.Printf("result cache unavailable, running in degraded (uncached) mode: %v", err)
	} else {
		store = boltCache
		defer boltCache.Close()
	}

	h := handler.New(store, cfg.Engine)
	srv := transport.NewServer(h, monitor.New())

	httpServer := &http.Server{
		Addr:    *bindAddr,
		Handler: srv.Handler(),
	}

	go func() {
		log.Printf("cgol server listening on %s", *bindAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	log.Println("server stopped")
}
