package httpserver

import (
	"net"
	"time"
)

type Option func(*Server)

// Port keeps the host part of the current address.
func Port(port string) Option {
	return func(s *Server) {
		host, _, _ := net.SplitHostPort(s.server.Addr)
		s.server.Addr = net.JoinHostPort(host, port)
	}
}

// Host binds to a single interface, e.g. "127.0.0.1" for a local-only API.
func Host(host string) Option {
	return func(s *Server) {
		_, port, _ := net.SplitHostPort(s.server.Addr)
		s.server.Addr = net.JoinHostPort(host, port)
	}
}

func Timeouts(read, write time.Duration) Option {
	return func(s *Server) {
		if read > 0 {
			s.server.ReadTimeout = read
		}
		if write > 0 {
			s.server.WriteTimeout = write
		}
	}
}

func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}
