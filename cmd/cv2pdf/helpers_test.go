package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Mock pool and environment
// ---------------------------------------------------------------------------

// mockConverter records every input and returns a fixed result.
type mockConverter struct {
	mu     sync.Mutex
	result *cv2pdf.ConvertResult
	err    error
	inputs []cv2pdf.Input
}

func (m *mockConverter) Convert(_ context.Context, in cv2pdf.Input) (*cv2pdf.ConvertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, in)
	if m.err != nil {
		return nil, m.err
	}
	res := *m.result
	if in.HTMLOnly {
		res.PDF = nil
	}
	return &res, nil
}

func (m *mockConverter) calls() []cv2pdf.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]cv2pdf.Input(nil), m.inputs...)
}

// mockPool hands out one shared mockConverter.
type mockPool struct {
	conv     *mockConverter
	mu       sync.Mutex
	size     int
	opts     int
	acquired int
	released int
	closed   bool
}

func (p *mockPool) Acquire(ctx context.Context) (Converter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.acquired++
	p.mu.Unlock()
	return p.conv, nil
}

func (p *mockPool) Release(Converter) {
	p.mu.Lock()
	p.released++
	p.mu.Unlock()
}

func (p *mockPool) Size() int { return p.size }

func (p *mockPool) Close() error {
	p.closed = true
	return nil
}

func newMockPool() *mockPool {
	return &mockPool{conv: &mockConverter{result: &cv2pdf.ConvertResult{
		CSS:   "body{}",
		HTML:  []byte("<html><body>Ada</body></html>"),
		PDF:   []byte("%PDF-1.4 mock"),
		Pages: 1,
	}}}
}

// testEnv returns an environment writing to buffers and using pool.
func testEnv(pool *mockPool) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) },
		Stdout: stdout,
		Stderr: stderr,
		NewPool: func(size int, opts ...cv2pdf.Option) Pool {
			pool.size = size
			pool.opts = len(opts)
			return pool
		},
	}
	return env, stdout, stderr
}

// writeFile writes content under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const samplePersonalJSON = `{"name": "Ada Lovelace", "title": "Analyst", "photo": "img/ada.png"}`

func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
