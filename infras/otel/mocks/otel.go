// Package mocks provides Otel doubles for tests: a no-op one and one that
// records the spans it opens.
package mocks

import (
	"context"
	"sync"
	"todos/infras/otel"
)

type noop struct{}

func (noop) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, noopScope{}
}

type noopScope struct{}

func (noopScope) AddEvent(string) {}
func (noopScope) End() {}
func (noopScope) SetAttribute(string, any) {}
func (noopScope) SetAttributes(map[string]any) {}
func (noopScope) TraceError(error) {}
func (noopScope) TraceIfError(error) {}

func NewOtel() otel.Otel {
	return noop{}
}

func NewScope() otel.Scope {
	return noopScope{}
}

// Span is what a Recorder keeps of one scope.
type Span struct {
	Name   string
	Ended  bool
	Errors []error
}

type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := &Span{Name: spanName}
	r.spans = append(r.spans, span)

	return ctx, &recordedScope{recorder: r, span: span}
}

// Spans returns a copy of every span opened so far, in order.
func (r *Recorder) Spans() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Span, len(r.spans))
	for i, span := range r.spans {
		out[i] = *span
	}

	return out
}

type recordedScope struct {
	noopScope

	recorder *Recorder
	span     *Span
}

func (s *recordedScope) End() {
	s.recorder.mu.Lock()
	s.span.Ended = true
	s.recorder.mu.Unlock()
}

func (s *recordedScope) TraceError(err error) {
	s.recorder.mu.Lock()
	s.span.Errors = append(s.span.Errors, err)
	s.recorder.mu.Unlock()
}

func (s *recordedScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
