package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"solar-catalog-be/internal/pkg/assethost"
	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/repository/memory"
	"solar-catalog-be/internal/repository/unitofwork"
	"solar-catalog-be/pkg/events"

	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

type fakeUploader struct {
	mu        sync.Mutex
	uploads   int
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, filename string) (*assethost.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	if _, err := io.ReadAll(file); err != nil {
		return nil, err
	}
	f.uploads++
	return &assethost.UploadResult{
		URL:      fmt.Sprintf("https://res.cloudinary.com/demo/image/upload/products/%d-%s", f.uploads, filename),
		PublicID: fmt.Sprintf("products/%d", f.uploads),
	}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, publicID)
	return f.deleteErr
}

var errBoom = errors.New("boom")

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return memory.NewRepositoryFactory(memory.NewStore())
}

func nopLogger() logger.ILogger {
	return logger.NewNopLogger()
}

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	_, ok := serverutils.AsAppError(err)
	require.True(t, ok, "expected AppError, got %T: %v", err, err)
	require.Equal(t, code, serverutils.StatusOf(err), "unexpected status for %v", err)
}
