package main

import (
	"context"
	"fmt"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// Converter renders one CV.
type Converter interface {
	Convert(ctx context.Context, input cv2pdf.Input) (*cv2pdf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*cv2pdf.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire(ctx context.Context) (Converter, error)
	Release(Converter)
	Size() int
	Close() error
}

// poolAdapter exposes a *cv2pdf.ConverterPool through the Pool interface.
type poolAdapter struct {
	pool *cv2pdf.ConverterPool
}

var _ Pool = (*poolAdapter)(nil)

func newConverterPool(size int, opts ...cv2pdf.Option) Pool {
	return &poolAdapter{pool: cv2pdf.NewConverterPool(size, opts...)}
}

func (a *poolAdapter) Acquire(ctx context.Context) (Converter, error) {
	c, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Release panics when handed a converter this pool did not produce.
func (a *poolAdapter) Release(c Converter) {
	conv, ok := c.(*cv2pdf.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
