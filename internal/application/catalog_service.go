package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
	"github.com/jannofresh/jannofresh-api/internal/domain/repository"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
)

const productCacheTTL = 5 * time.Minute

// CatalogService serves the product catalog with a Redis read-through cache
// on listings and optional Elasticsearch product search. Both cache and
// search degrade silently when not configured.
type CatalogService struct {
	Products repository.ProductRepository
	Redis    *redis.Client
	ES       *elasticsearch.Client
	ESIndex  string
	Logger   *logrus.Logger
}

func NewCatalogService(products repository.ProductRepository, rdb *redis.Client, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Products: products, Redis: rdb, ES: es, ESIndex: esIndex, Logger: logger}
}

func productCacheKey(categoryID string) string {
	if categoryID == "" {
		categoryID = "all"
	}
	return "catalog:products:" + categoryID
}

func (s *CatalogService) ListProducts(ctx context.Context, categoryID string) ([]entity.Product, error) {
	key := productCacheKey(categoryID)
	if s.Redis != nil {
		var cached []entity.Product
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	out, err := s.Products.List(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, out, productCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("product cache write failed")
		}
	}
	return out, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return s.Products.GetByID(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.Products.Categories(ctx)
}

// CreateProduct adds a catalog item, invalidates the listing cache and
// indexes the document for search.
func (s *CatalogService) CreateProduct(ctx context.Context, p *entity.Product) error {
	if err := s.Products.Create(ctx, p); err != nil {
		return err
	}
	s.invalidateListings(ctx, p.CategoryID)
	s.indexProduct(ctx, p)
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, p *entity.Product) error {
	if err := s.Products.Update(ctx, p); err != nil {
		return err
	}
	s.invalidateListings(ctx, p.CategoryID)
	s.indexProduct(ctx, p)
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	p, err := s.Products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx, p.CategoryID)
	s.removeFromIndex(ctx, id)
	return nil
}

// SearchProducts performs a multi_match search on title, description and
// tags. Without Elasticsearch it falls back to a substring scan over the
// store so search keeps working in demo mode.
func (s *CatalogService) SearchProducts(ctx context.Context, q string, size int) ([]entity.Product, error) {
	if size <= 0 || size > 50 {
		size = 10
	}
	if s.ES == nil || s.ESIndex == "" {
		return s.scanSearch(ctx, q, size)
	}

	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "tags"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("es search failed, falling back to store scan")
		}
		return s.scanSearch(ctx, q, size)
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source entity.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.Product, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *CatalogService) scanSearch(ctx context.Context, q string, size int) ([]entity.Product, error) {
	all, err := s.Products.List(ctx, "")
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(q)
	out := make([]entity.Product, 0, size)
	for _, p := range all {
		if len(out) == size {
			break
		}
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *CatalogService) indexProduct(ctx context.Context, p *entity.Product) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	b, _ := json.Marshal(p)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
}

func (s *CatalogService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

func (s *CatalogService) invalidateListings(ctx context.Context, categoryID string) {
	if s.Redis == nil {
		return
	}
	_ = helpers.RedisDel(ctx, s.Redis, productCacheKey(""))
	if categoryID != "" {
		_ = helpers.RedisDel(ctx, s.Redis, productCacheKey(categoryID))
	}
}
