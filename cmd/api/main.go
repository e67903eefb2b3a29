package main

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"taskledger/internal/config"
	"taskledger/internal/handlers"
	"taskledger/internal/ledger"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("pinging database: %v", err)
	}

	store := ledger.New(cfg.AdminID)

	handler := handlers.New(db, store, cfg.JWTKey)
	router := handlers.Router(handler, cfg.JWTKey)

	addr := ""
	if cfg.Port != "" {
		addr = ":" + cfg.Port
	}

	if addr == "" {
		log.Fatal(router.Run())
	}
	log.Fatal(router.Run(addr))
}
