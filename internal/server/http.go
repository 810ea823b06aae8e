// Package server exposes segmentation and rendering over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mithrel/blockfmt/internal/pipeline"
	"github.com/mithrel/blockfmt/internal/present/format"
	"github.com/mithrel/blockfmt/internal/render"
	"github.com/mithrel/blockfmt/internal/segment"
	"github.com/mithrel/blockfmt/pkg/api"
)

// DefaultMaxBody caps request bodies when no limit is configured.
const DefaultMaxBody = 1 << 20

type Options struct {
	// Token, when set, is required as a bearer token on /v1 routes.
	Token   string
	MaxBody int64
}

// Server serves segment and render endpoints. Handlers share one Renderer.
type Server struct {
	opts     Options
	renderer *render.Renderer
	log      *zap.Logger
}

func New(opts Options, r *render.Renderer, log *zap.Logger) *Server {
	if opts.MaxBody <= 0 {
		opts.MaxBody = DefaultMaxBody
	}
	if r == nil {
		r = render.New(render.NewHighlighter(render.DefaultKeywords...))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{opts: opts, renderer: r, log: log}
}

// Response is the body returned by /v1/segment and /v1/render.
type Response struct {
	Fingerprint string          `json:"fingerprint" yaml:"fingerprint"`
	Blocks      []api.Block     `json:"blocks" yaml:"blocks"`
	Units       []format.Record `json:"units,omitempty" yaml:"units,omitempty"`
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/segment", s.auth(s.handleSegment))
	mux.HandleFunc("/v1/render", s.auth(s.handleRender))
	return mux
}

func (s *Server) auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok := strings.TrimSpace(s.opts.Token)
		if tok == "" {
			next.ServeHTTP(w, r)
			return
		}
		got := r.Header.Get("Authorization")
		if !strings.HasPrefix(got, "Bearer ") || strings.TrimSpace(strings.TrimPrefix(got, "Bearer ")) != tok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}
}

func (s *Server) readText(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return "", false
		}
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return "", false
	}
	return string(b), true
}

func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}
	blocks := segment.Segment(text)
	s.write(w, r, Response{Fingerprint: api.Fingerprint(blocks), Blocks: blocks})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}
	start := time.Now()
	doc := pipeline.Process(text, s.renderer)
	s.log.Debug("rendered",
		zap.Int("bytes", len(text)),
		zap.Int("units", len(doc.Units)),
		zap.Duration("elapsed", time.Since(start)),
	)
	s.write(w, r, Response{
		Fingerprint: doc.Fingerprint(),
		Blocks:      doc.Blocks,
		Units:       format.Records(doc.Units),
	})
}

// write encodes resp as YAML when ?format=yaml, JSON otherwise.
func (s *Server) write(w http.ResponseWriter, r *http.Request, resp Response) {
	var err error
	if strings.EqualFold(r.URL.Query().Get("format"), "yaml") {
		w.Header().Set("Content-Type", "application/yaml")
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(resp); err == nil {
			err = enc.Close()
		}
	} else {
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(resp)
	}
	if err != nil {
		s.log.Warn("write response failed", zap.Error(err))
	}
}

// Serve serves on l until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{Handler: s.Router(), ReadHeaderTimeout: 10 * time.Second}
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("listening", zap.String("addr", l.Addr().String()))
	if err := srv.Serve(l); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}
