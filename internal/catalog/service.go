package catalog

import (
	"context"

	"github.com/lowkeylegends/storefront-backend/internal/products"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
	"github.com/lowkeylegends/storefront-backend/pkg/logger"
	"github.com/lowkeylegends/storefront-backend/pkg/printify"
)

const (
	SourcePrintify = "printify"
	SourceDatabase = "database"
)

// Listing is a catalog snapshot with its provenance. Products holds either the
// live provider shapes or the cached summaries depending on Source.
type Listing struct {
	Products any
	Source   string
}

// ProviderClient is the live catalog surface required by the listing service.
type ProviderClient interface {
	ListProducts(ctx context.Context) ([]printify.Product, error)
}

type Service interface {
	List(ctx context.Context) (Listing, error)
}

type service struct {
	provider ProviderClient
	cache    products.Service
	logger   *logger.Logger
}

// NewService wires the provider-first listing with its cache fallback. A nil
// provider client means the cache serves everything.
func NewService(provider ProviderClient, cache products.Service, logg *logger.Logger) Service {
	return &service{provider: provider, cache: cache, logger: logg}
}

// List serves the live provider catalog, falling back to the local cache when
// the provider is unreachable. Only a double failure surfaces an error.
func (s *service) List(ctx context.Context) (Listing, error) {
	if s.provider != nil {
		raw, err := s.provider.ListProducts(ctx)
		if err == nil {
			return Listing{Products: printify.FormatProducts(raw), Source: SourcePrintify}, nil
		}
		if s.logger != nil {
			s.logger.Warn(s.logger.WithField(ctx, "error", err.Error()), "catalog.provider_unavailable")
		}
	}

	cached, err := s.cache.List(ctx)
	if err != nil {
		return Listing{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load products")
	}
	return Listing{Products: cached, Source: SourceDatabase}, nil
}
