package handlers

import (
	"database/sql"
	"strconv"

	"taskledger/internal/ledger"
)

type Handler struct {
	db     *sql.DB
	store  *ledger.Store
	jwtKey string
}

func New(db *sql.DB, store *ledger.Store, jwtKey string) *Handler {
	return &Handler{db: db, store: store, jwtKey: jwtKey}
}

func parseTaskID(id string) (uint64, error) {
	return strconv.ParseUint(id, 10, 64)
}
