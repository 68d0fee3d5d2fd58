package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/kingrain94/rent-dashboard/internal/config"
	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/repository"
)

const defaultSearchSize = 20

type tenantSearchRepository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewTenantSearchRepository(client *opensearch.Client, config *config.OpenSearchConfig) repository.SearchRepository {
	return &tenantSearchRepository{
		client: client,
		config: config,
	}
}

func (r *tenantSearchRepository) IndexTenant(ctx context.Context, tenant *domain.Tenant) error {
	if err := r.ensureIndex(ctx, tenant.UserID); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(toSearchDocument(tenant))
	if err != nil {
		return fmt.Errorf("failed to marshal tenant: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.config.GetIndexName(tenant.UserID),
		DocumentID: tenant.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *tenantSearchRepository) DeleteTenant(ctx context.Context, ownerID, tenantID string) error {
	req := opensearchapi.DeleteRequest{
		Index:      r.config.GetIndexName(ownerID),
		DocumentID: tenantID,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	defer res.Body.Close()

	// A missing document or index means there is nothing left to remove.
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("error deleting document: %s", res.String())
	}

	return nil
}

func (r *tenantSearchRepository) SearchTenants(ctx context.Context, ownerID, query string, limit int) ([]domain.TenantSearchHit, error) {
	if ownerID == "" {
		return nil, repository.ErrMissingOwner
	}
	if limit <= 0 {
		limit = defaultSearchSize
	}

	queryJSON, err := json.Marshal(buildSearchQuery(ownerID, query, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexName(ownerID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == http.StatusNotFound {
			return []domain.TenantSearchHit{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.TenantSearchHit `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	hits := make([]domain.TenantSearchHit, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		hits = append(hits, hit.Source)
	}

	return hits, nil
}

func toSearchDocument(tenant *domain.Tenant) domain.TenantSearchHit {
	return domain.TenantSearchHit{
		ID:          tenant.ID,
		UserID:      tenant.UserID,
		Name:        tenant.Name,
		Notes:       tenant.Notes,
		Status:      tenant.Status,
		MonthlyRent: tenant.MonthlyRent.StringFixed(2),
		RentDueDay:  tenant.RentDueDay,
	}
}

// buildSearchQuery matches name and notes, always filtered to one owner.
func buildSearchQuery(ownerID, query string, size int) map[string]any {
	must := []map[string]any{
		{"term": map[string]any{"user_id": ownerID}},
	}

	if query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "notes"},
				"fuzziness": "AUTO",
			},
		})
	}

	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
		"size": size,
		"sort": []any{
			"_score",
			map[string]any{"name.keyword": map[string]any{"order": "asc"}},
		},
	}
}

func (r *tenantSearchRepository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"user_id": { "type": "keyword" },
				"name": {
					"type": "text",
					"fields": { "keyword": { "type": "keyword" } }
				},
				"notes": { "type": "text" },
				"status": { "type": "keyword" },
				"monthly_rent": { "type": "scaled_float", "scaling_factor": 100 },
				"rent_due_day": { "type": "integer" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *tenantSearchRepository) ensureIndex(ctx context.Context, ownerID string) error {
	indexName := r.config.GetIndexName(ownerID)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}
