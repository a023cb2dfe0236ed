package main

import (
	"context"
	"errors"
	"net"
)

// Server accepts connections and hands each one to its own Worker.
type Server struct {
	Listener net.Listener
	Router   *Router
}

func NewServer(ln net.Listener, router *Router) *Server {
	return &Server{Listener: ln, Router: router}
}

func (s *Server) handle(conn net.Conn) {
	worker := NewWorker(s.Router)
	worker.Start(conn) // worker takes the ownership of |conn|
}

// Serve runs the accept loop until ctx is cancelled, which closes the
// listener. Workers that are still running are not waited for.
func (s *Server) Serve(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			s.Listener.Close()
		case <-stop:
		}
	}()

	for {
		conn, err := s.Listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			warnf("accept error: %v", err)
			continue
		}
		go s.handle(conn)
	}
}
