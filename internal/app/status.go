package app

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"
)

func (a *App) statusServer() (*http.Server, net.Listener, error) {
	if a.config.StatusAddr == "" {
		return nil, nil, nil
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/ra/overview", a.handleOverview)

	lis, err := net.Listen("tcp", a.config.StatusAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen status %s: %w", a.config.StatusAddr, err)
	}

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv, lis, nil
}

// handleOverview reports a point-in-time snapshot of the store state.
func (a *App) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.store.Overview()); err != nil {
		a.logger.Warn("overview encode failed", "error", err)
	}
}
