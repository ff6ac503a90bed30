package domain

import "context"

// UnitOfWork groups local store writes. Remote calls are made outside of it.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
