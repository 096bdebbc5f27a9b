package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/lawko/lawsearch/internal/config"
	domart "github.com/lawko/lawsearch/internal/domain/article"
	"github.com/lawko/lawsearch/internal/domain/search/query"
	logpkg "github.com/lawko/lawsearch/internal/logger"
	articlerepo "github.com/lawko/lawsearch/internal/repository/article"
	"github.com/lawko/lawsearch/internal/transport/meili"
)

const batchSize = 500

// reindex loads every article of each configured law from the article
// store and pushes it into the matching engine index. Bodies get an
// n-gram companion field so partial Korean tokens still match.
func main() {
	var only string
	flag.StringVar(&only, "index", "", "reindex a single index by name (default: all configured)")
	flag.Parse()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to open article store", zap.Error(err))
	}
	defer db.Close()

	repo := articlerepo.New(db)
	engine := meili.NewClient(&meili.Config{
		Host:    cfg.Engine.Host,
		APIKey:  cfg.Engine.APIKey,
		Timeout: 60 * time.Second, // bulk pushes, not request-path searches
		Logger:  logger,
	})

	ctx := context.Background()
	for _, b := range cfg.Engine.Indexes {
		if only != "" && b.Name != only {
			continue
		}
		if err := reindexLaw(ctx, repo, engine, b.Name, b.LawCode, logger); err != nil {
			logger.Fatal("Reindex failed",
				zap.String("index", b.Name),
				zap.String("law_code", b.LawCode),
				zap.Error(err),
			)
		}
	}

	logger.Info("Reindex complete")
}

func reindexLaw(
	ctx context.Context,
	repo *articlerepo.Repo,
	engine *meili.Client,
	index, lawCode string,
	logger *zap.Logger,
) error {
	articles, err := repo.ListByLaw(ctx, lawCode)
	if err != nil {
		return fmt.Errorf("list articles for %s: %w", lawCode, err)
	}

	docs := buildDocs(articles)

	for start := 0; start < len(docs); start += batchSize {
		end := start + batchSize
		if end > len(docs) {
			end = len(docs)
		}
		if err := engine.AddDocuments(ctx, index, docs[start:end]); err != nil {
			return fmt.Errorf("push documents to %s: %w", index, err)
		}
	}

	logger.Info("Index refreshed",
		zap.String("index", index),
		zap.String("law_code", lawCode),
		zap.Int("documents", len(docs)),
	)
	return nil
}

// buildDocs maps stored articles to engine documents. The body gets an
// n-gram companion field so partial tokens of agglutinated terms match.
func buildDocs(articles []domart.Article) []map[string]any {
	docs := make([]map[string]any, 0, len(articles))
	for _, a := range articles {
		docs = append(docs, map[string]any{
			"id":           fmt.Sprintf("%s-%s", a.LawCode, a.JoCode),
			"lawCode":      a.LawCode,
			"articleNo":    a.ArticleNo,
			"articleSubNo": a.ArticleSubNo,
			"joCode":       a.JoCode,
			"heading":      a.Heading,
			"body":         a.Body,
			"body_ngram":   query.KoNgram(a.Body, 2, 3),
		})
	}
	return docs
}
