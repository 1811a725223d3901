package main

import (
	"flag"
	"net/http"
	"os"

	"go.uber.org/zap"

	"pinopoly/internal/stub"
)

func main() {
	addr := flag.String("addr", ":5000", "listen address")
	adminKey := flag.String("admin-key", "admin", "admin key accepted by /api/auth/admin")
	displayKey := flag.String("display-key", "display", "display key accepted by /api/auth/display")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	srv := stub.New(*adminKey, *displayKey, log)
	log.Info("stub server listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		log.Fatal("serve failed", zap.Error(err))
	}
}
