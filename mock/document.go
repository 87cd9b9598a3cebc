package mock

import (
	"context"

	"github.com/cdpsupport/cdpchat"
)

var _ cdpchat.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of cdpchat.DocumentService.
type DocumentService struct {
	CreateDocumentFn            func(ctx context.Context, doc *cdpchat.Document) error
	FindDocumentByIDFn          func(ctx context.Context, id string) (*cdpchat.Document, error)
	FindDocumentsFn             func(ctx context.Context, filter cdpchat.DocumentFilter) ([]*cdpchat.Document, error)
	DeleteDocumentFn            func(ctx context.Context, id string) error
	DeleteDocumentsByPlatformFn func(ctx context.Context, platform cdpchat.Platform) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *cdpchat.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*cdpchat.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter cdpchat.DocumentFilter) ([]*cdpchat.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

func (s *DocumentService) DeleteDocumentsByPlatform(ctx context.Context, platform cdpchat.Platform) error {
	return s.DeleteDocumentsByPlatformFn(ctx, platform)
}
