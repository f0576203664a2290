package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/capitalizeai/scoring-api/internal/config"
	"github.com/capitalizeai/scoring-api/internal/domain"
)

type Repository interface {
	// Index indexes a single scoring request
	Index(ctx context.Context, req *domain.ScoringRequest) error
	// BulkIndex indexes multiple scoring requests
	BulkIndex(ctx context.Context, reqs []domain.ScoringRequest) error
	// Search searches scoring requests with the given filter
	Search(ctx context.Context, filter *domain.ScoringRequestFilter) ([]domain.ScoringRequest, error)
	// CreateIndex creates an index for an organization if it doesn't exist
	CreateIndex(ctx context.Context, orgID string, t time.Time) error
	// DeleteIndex deletes an index for an organization
	DeleteIndex(ctx context.Context, orgID string) error
}

type repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) Repository {
	return &repository{
		client: client,
		config: config,
	}
}

func (r *repository) Index(ctx context.Context, req *domain.ScoringRequest) error {
	indexTime := time.Now()
	if !req.CreatedAt.IsZero() {
		indexTime = req.CreatedAt
	}
	indexName := r.config.GetIndexName(req.OrgID, indexTime)

	if err := r.CreateIndex(ctx, req.OrgID, indexTime); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal scoring request: %w", err)
	}

	indexReq := opensearchapi.IndexRequest{
		Index:      indexName,
		DocumentID: req.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := indexReq.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *repository) BulkIndex(ctx context.Context, reqs []domain.ScoringRequest) error {
	if len(reqs) == 0 {
		return nil
	}

	// Group requests by org and month
	groups := make(map[string][]domain.ScoringRequest)
	for _, req := range reqs {
		indexTime := time.Now()
		if !req.CreatedAt.IsZero() {
			indexTime = req.CreatedAt
		}
		indexName := r.config.GetIndexName(req.OrgID, indexTime)
		groups[indexName] = append(groups[indexName], req)
	}

	for indexName, groupReqs := range groups {
		if err := r.bulkIndexGroup(ctx, indexName, groupReqs); err != nil {
			return fmt.Errorf("failed to bulk index group for index %s: %w", indexName, err)
		}
	}

	return nil
}

func (r *repository) bulkIndexGroup(ctx context.Context, indexName string, reqs []domain.ScoringRequest) error {
	if len(reqs) > 0 {
		indexTime := time.Now()
		if !reqs[0].CreatedAt.IsZero() {
			indexTime = reqs[0].CreatedAt
		}
		if err := r.CreateIndex(ctx, reqs[0].OrgID, indexTime); err != nil {
			return fmt.Errorf("failed to ensure index exists: %w", err)
		}
	}

	var bulkBody strings.Builder
	for _, req := range reqs {
		action := map[string]any{
			"index": map[string]any{
				"_index": indexName,
				"_id":    req.ID,
			},
		}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
		bulkBody.Write(actionLine)
		bulkBody.WriteString("\n")

		docLine, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		bulkBody.Write(docLine)
		bulkBody.WriteString("\n")
	}

	bulkReq := opensearchapi.BulkRequest{
		Body: strings.NewReader(bulkBody.String()),
	}

	res, err := bulkReq.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}

	return nil
}

func (r *repository) Search(ctx context.Context, filter *domain.ScoringRequestFilter) ([]domain.ScoringRequest, error) {
	if filter.OrgID == "" {
		return nil, fmt.Errorf("org_id is required")
	}

	query := r.buildSearchQuery(filter)

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexPattern(filter.OrgID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.ScoringRequest{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.ScoringRequest `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var requests []domain.ScoringRequest
	for _, hit := range searchResult.Hits.Hits {
		requests = append(requests, hit.Source)
	}

	return requests, nil
}

// buildSearchQuery constructs the OpenSearch query based on the filter
func (r *repository) buildSearchQuery(filter *domain.ScoringRequestFilter) map[string]any {
	must := make([]map[string]any, 0)

	// Exact match filters (keyword fields)
	exactMatches := map[string]string{
		"status":        string(filter.Status),
		"requested_by":  filter.RequestedBy,
		"subject_phone": filter.SubjectPhone,
	}
	for field, value := range exactMatches {
		if value != "" {
			must = append(must, createTermQuery(field, value))
		}
	}

	// Full-text search on the subject name
	if filter.SubjectName != "" {
		must = append(must, createMatchQuery("subject_name", filter.SubjectName))
	}

	if !filter.StartTime.IsZero() || !filter.EndTime.IsZero() {
		must = append(must, createTimeRangeQuery(filter.StartTime, filter.EndTime))
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query["from"] = (filter.Page - 1) * filter.PageSize
		query["size"] = filter.PageSize
	}

	// Most recent first
	query["sort"] = []map[string]any{
		{
			"created_at": map[string]any{
				"order": "desc",
			},
		},
	}

	return query
}

func createTermQuery(field, value string) map[string]any {
	return map[string]any{
		"term": map[string]any{
			field: value,
		},
	}
}

func createMatchQuery(field, value string) map[string]any {
	return map[string]any{
		"match": map[string]any{
			field: value,
		},
	}
}

func createTimeRangeQuery(startTime, endTime time.Time) map[string]any {
	timeRange := make(map[string]any)
	if !startTime.IsZero() {
		timeRange["gte"] = startTime
	}
	if !endTime.IsZero() {
		timeRange["lte"] = endTime
	}
	return map[string]any{
		"range": map[string]any{
			"created_at": timeRange,
		},
	}
}

// getIndexMapping returns the mapping for the scoring request index
func (r *repository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"org_id": { "type": "keyword" },
				"requested_by": { "type": "keyword" },
				"subject_name": { "type": "text" },
				"subject_phone": { "type": "keyword" },
				"subject_id_number": { "type": "keyword" },
				"status": { "type": "keyword" },
				"priority": { "type": "keyword" },
				"data_sources": { "type": "keyword" },
				"input_data": {
					"type": "object",
					"dynamic": true
				},
				"metadata": {
					"type": "object",
					"dynamic": true
				},
				"processing_time_ms": { "type": "long" },
				"created_at": { "type": "date" },
				"updated_at": { "type": "date" }
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

func (r *repository) CreateIndex(ctx context.Context, orgID string, t time.Time) error {
	indexName := r.config.GetIndexName(orgID, t)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil // Index already exists
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

func (r *repository) DeleteIndex(ctx context.Context, orgID string) error {
	pattern := r.config.GetIndexPattern(orgID)

	del := opensearchapi.IndicesDeleteRequest{
		Index: []string{pattern},
	}

	res, err := del.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error deleting index: %s", res.String())
	}

	return nil
}
