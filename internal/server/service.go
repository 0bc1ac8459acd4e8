// Package server owns the TCP endpoint: the accept loop, per-connection
// sessions, request dispatch, and the optional HTTP admin surface.
package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/Izaek256/CarRental-Server-Client/internal/config"
	"github.com/Izaek256/CarRental-Server-Client/internal/report"
	"github.com/Izaek256/CarRental-Server-Client/internal/store"
)

// Service endpoint configuration.
type Config struct {
	ListenAddr  string
	AdminAddr   string
	ReportsDir  string
	CorsOrigins []string
}

// Service defaults for endpoint configuration.
func DefaultConfig() Config {
	return Config{
		ListenAddr: config.DefaultEndpoint,
		AdminAddr:  "",
		ReportsDir: ".",
	}
}

// Service is the running server: one listener, one session per connection.
type Service struct {
	cfg        Config
	store      *store.Store
	dispatcher *Dispatcher
	log        zerolog.Logger

	connsMu sync.Mutex
	conns   map[net.Conn]struct{}

	sessionCount atomic.Int64
}

func NewService(cfg Config, log zerolog.Logger) (*Service, error) {
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		cfg.ListenAddr = DefaultConfig().ListenAddr
	}
	if strings.TrimSpace(cfg.ReportsDir) == "" {
		cfg.ReportsDir = "."
	}

	st, err := store.Open()
	if err != nil {
		return nil, err
	}
	reports := report.NewGenerator(st, cfg.ReportsDir, log)
	svc := &Service{
		cfg:        cfg,
		store:      st,
		dispatcher: NewDispatcher(st, reports, log),
		log:        log.With().Str("component", "server").Logger(),
		conns:      make(map[net.Conn]struct{}),
	}
	return svc, nil
}

// Store exposes the backing store, mainly for seeding in tests.
func (s *Service) Store() *store.Store {
	return s.store
}

// Run blocks until SIGINT/SIGTERM shuts the service down.
func (s *Service) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return err
	}
	s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")

	adminErr := make(chan error, 1)
	if strings.TrimSpace(s.cfg.AdminAddr) != "" {
		go func() {
			adminErr <- s.serveAdmin(ctx, strings.TrimSpace(s.cfg.AdminAddr))
		}()
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Serve(ctx, ln)
	}()
	select {
	case err := <-serveErr:
		return err
	case err := <-adminErr:
		if err != nil {
			return err
		}
		return <-serveErr
	}
}

// Serve accepts sessions on an existing listener until ctx is cancelled.
func (s *Service) Serve(ctx context.Context, ln net.Listener) error {
	defer ln.Close()
	go func() {
		<-ctx.Done()
		s.closeAllConns()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		s.trackConn(conn)
		go s.handleConn(conn)
	}
}

func (s *Service) trackConn(conn net.Conn) {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	s.conns[conn] = struct{}{}
}

func (s *Service) untrackConn(conn net.Conn) {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	delete(s.conns, conn)
}

func (s *Service) closeAllConns() {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	for conn := range s.conns {
		_ = conn.Close()
		delete(s.conns, conn)
	}
}
