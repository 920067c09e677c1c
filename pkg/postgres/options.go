package postgres

import "time"

// Option tunes the pool before it connects. Non-positive values keep the
// package defaults.
type Option func(*Postgres)

func MaxPoolSize(size int) Option {
	return func(p *Postgres) {
		if size > 0 {
			p.maxPoolSize = size
		}
	}
}

func ConnAttempts(attempts int) Option {
	return func(p *Postgres) {
		if attempts > 0 {
			p.connAttempts = attempts
		}
	}
}

// ConnTimeout is the pause between two ping attempts.
func ConnTimeout(timeout time.Duration) Option {
	return func(p *Postgres) {
		if timeout > 0 {
			p.connTimeout = timeout
		}
	}
}

// MaxConnIdleTime closes pooled connections idle for longer than d.
func MaxConnIdleTime(d time.Duration) Option {
	return func(p *Postgres) {
		if d > 0 {
			p.maxConnIdleTime = d
		}
	}
}
