package receiver

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/groundlink-io/groundlink/internal/session"
	"github.com/groundlink-io/groundlink/internal/telemetry"
	"github.com/groundlink-io/groundlink/pkg/log"
	"github.com/groundlink-io/groundlink/pkg/options"
)

// httpServer exposes health, metrics and the read-only telemetry API.
type httpServer struct {
	server *http.Server
	logger log.Logger
}

func newHTTPServer(opts *options.HTTPOptions, sess *session.Session, logger log.Logger) *httpServer {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/latest", handleLatest(sess)).Methods(http.MethodGet)
	api.HandleFunc("/history", handleHistory(sess)).Methods(http.MethodGet)
	api.HandleFunc("/stats", handleStats(sess)).Methods(http.MethodGet)

	return &httpServer{
		server: &http.Server{
			Addr:         opts.Addr,
			Handler:      r,
			ReadTimeout:  opts.Timeout,
			WriteTimeout: opts.Timeout,
		},
		logger: logger.WithName("http"),
	}
}

func (s *httpServer) Start(ctx context.Context) error {
	s.logger.Info("starting http server", "addr", s.server.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

type recordResponse struct {
	Seq        int64             `json:"seq"`
	ReceivedAt time.Time         `json:"receivedAt"`
	Fields     map[string]string `json:"fields"`
}

func toRecordResponse(rec telemetry.Record) recordResponse {
	fields := make(map[string]string, telemetry.FieldCount())
	for _, name := range telemetry.FieldNames() {
		v, _ := rec.Field(name)
		fields[name] = v
	}
	return recordResponse{Seq: rec.Seq(), ReceivedAt: rec.ReceivedAt(), Fields: fields}
}

func handleLatest(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		rec, ok := sess.Latest()
		if !ok {
			http.Error(w, "no telemetry yet", http.StatusNotFound)
			return
		}
		writeJSON(w, toRecordResponse(rec))
	}
}

type historyResponse struct {
	Field  string      `json:"field"`
	Times  []time.Time `json:"times"`
	Values []*float64  `json:"values"`
}

func handleHistory(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field := r.URL.Query().Get("field")
		if field == "" {
			field = telemetry.FieldAltitude
		}
		times, values, err := sess.Series(field)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// Non-numeric samples become null rather than a NaN JSON cannot carry.
		out := make([]*float64, len(values))
		for i := range values {
			if !math.IsNaN(values[i]) {
				v := values[i]
				out[i] = &v
			}
		}
		writeJSON(w, historyResponse{Field: field, Times: times, Values: out})
	}
}

func handleStats(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, sess.Stats())
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
