package article

import (
	"context"

	domart "github.com/lawko/lawsearch/internal/domain/article"
)

// Repository defines the storage contract for canonical article reads.
type Repository interface {
	GetByNumber(ctx context.Context, lawCode string, articleNo, articleSubNo int) (domart.Article, error)
	GetByJoCode(ctx context.Context, lawCode, joCode string) (domart.Article, error)
	ListLaws(ctx context.Context) ([]domart.Law, error)
}
