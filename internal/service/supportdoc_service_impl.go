package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/repository"
)

type supportDocService struct {
	docs     repository.SupportDocRepo
	observer UseCaseObserver
}

func NewSupportDocService(docs repository.SupportDocRepo, observer UseCaseObserver) SupportDocService {
	return &supportDocService{docs: docs, observer: useCaseObserverOrNoop(observer)}
}

func (s *supportDocService) ImportFile(ctx context.Context, path string) (*domain.SupportDocument, error) {
	var doc *domain.SupportDocument
	err := observe(ctx, s.observer, "doc.import", map[string]any{"path": path}, func() error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}
		if !utf8.Valid(data) {
			return fmt.Errorf("document %s is not valid UTF-8 text", filepath.Base(path))
		}
		content := strings.TrimSpace(string(data))
		if content == "" {
			return fmt.Errorf("document %s is empty", filepath.Base(path))
		}
		doc = &domain.SupportDocument{
			Name:     filepath.Base(path),
			Content:  content,
			Selected: true,
		}
		return s.docs.Upsert(ctx, doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *supportDocService) Upsert(ctx context.Context, doc *domain.SupportDocument) error {
	if strings.TrimSpace(doc.Name) == "" {
		return fmt.Errorf("document name is empty")
	}
	return s.docs.Upsert(ctx, doc)
}

func (s *supportDocService) List(ctx context.Context) ([]domain.SupportDocument, error) {
	docs, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SupportDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d)
	}
	return out, nil
}

func (s *supportDocService) SetSelected(ctx context.Context, name string, selected bool) error {
	return s.docs.SetSelected(ctx, name, selected)
}

func (s *supportDocService) Delete(ctx context.Context, name string) error {
	return observe(ctx, s.observer, "doc.delete", map[string]any{"name": name}, func() error {
		return s.docs.Delete(ctx, name)
	})
}
