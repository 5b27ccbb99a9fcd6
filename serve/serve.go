// Copyright © 2021-2026 The Gomon Project.

package serve

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zosmac/gocore"
	"golang.org/x/net/websocket"
)

// prometheusHandler responds to Prometheus Collect requests.
func prometheusHandler(mux *http.ServeMux, hub *Hub) {
	// the default registry is not used as it adds Go runtime metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(hub)
	mux.Handle(
		"/metrics",
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)
}

// wsHandler opens a web socket streaming the readings of monitored processes.
// A client may send "suspend" to pause the stream and "resume" to continue it.
func wsHandler(mux *http.ServeMux, hub *Hub) {
	mux.Handle(
		"/ws",
		websocket.Server{
			Handler: func(ws *websocket.Conn) {
				defer ws.Close()
				readings, unsubscribe := hub.subscribe()
				defer unsubscribe()

				suspend := make(chan bool)
				closed := make(chan struct{})
				done := make(chan struct{})
				defer close(done)
				go func() {
					defer close(closed)
					var buf []byte
					for {
						if err := websocket.Message.Receive(ws, &buf); err != nil {
							return
						}
						var s bool
						switch {
						case bytes.HasPrefix(buf, []byte("suspend")):
							s = true
						case bytes.HasPrefix(buf, []byte("resume")):
						default:
							continue
						}
						select {
						case suspend <- s:
						case <-done:
							return
						}
					}
				}()

				suspended := false
				for {
					select {
					case <-closed:
						return
					case suspended = <-suspend:
					case s := <-readings:
						if suspended {
							continue
						}
						if err := websocket.JSON.Send(ws, s); err != nil {
							gocore.Error("websocket Send", err).Warn()
							return
						}
					}
				}
			},
			Handshake: func(c *websocket.Config, r *http.Request) error {
				return nil
			},
		},
	)
}

// Handler assembles the server's endpoints.
func Handler(hub *Hub) http.Handler {
	mux := http.NewServeMux()
	prometheusHandler(mux, hub)
	wsHandler(mux, hub)
	return mux
}

// Serve listens on the port requested on the command line and serves the hub's readings
// until the context is cancelled.
func Serve(ctx context.Context, hub *Hub) error {
	server := &http.Server{
		Addr:    "localhost:" + strconv.Itoa(flags.port),
		Handler: Handler(hub),
	}
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return gocore.Error("Listen", err, map[string]string{
			"address": server.Addr,
		})
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background()) // let server perform cleanup with timeout
	}()

	go func() {
		gocore.Error("procmon server", nil, map[string]string{
			"listen": "http://" + ln.Addr().String(),
		}).Info()
		if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			gocore.Error("procmon server", err).Err()
		}
	}()

	return nil
}
