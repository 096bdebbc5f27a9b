// Package article serves canonical statute text. Search hits carry
// snippets; this is where clients fetch the authoritative article body.
package article

import (
	"context"
	"fmt"

	"github.com/lawko/lawsearch/internal/domain"
	domart "github.com/lawko/lawsearch/internal/domain/article"
)

// Service handles canonical article lookups.
type Service struct {
	repo Repository
}

// New creates an article service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get fetches one article by law code and article number. articleSubNo 0
// means the base article.
func (s *Service) Get(ctx context.Context, lawCode string, articleNo, articleSubNo int) (domart.Article, error) {
	if lawCode == "" {
		return domart.Article{}, fmt.Errorf("%w: empty law code", domain.ErrInvalidRequest)
	}
	if articleNo <= 0 || articleSubNo < 0 {
		return domart.Article{}, fmt.Errorf("%w: invalid article number %d/%d",
			domain.ErrInvalidRequest, articleNo, articleSubNo)
	}
	return s.repo.GetByNumber(ctx, lawCode, articleNo, articleSubNo)
}

// GetByJoCode fetches one article by its padded jo code. lawCode may be
// empty for single-law deployments.
func (s *Service) GetByJoCode(ctx context.Context, lawCode, joCode string) (domart.Article, error) {
	if joCode == "" {
		return domart.Article{}, fmt.Errorf("%w: empty jo code", domain.ErrInvalidRequest)
	}
	return s.repo.GetByJoCode(ctx, lawCode, joCode)
}

// Laws lists the statute families present in the store.
func (s *Service) Laws(ctx context.Context) ([]domart.Law, error) {
	return s.repo.ListLaws(ctx)
}
