package usecase

import "time"

// Option configura los casos de uso.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock reemplaza el reloj usado para created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
