// Package search indexes listings in Elasticsearch for full-text queries.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// PropertyIndex is safe to use with a nil client: indexing is skipped and
// searches return nothing.
type PropertyIndex struct {
	ES        *elasticsearch.Client
	IndexName string
	Logger    *logrus.Logger
}

func NewPropertyIndex(es *elasticsearch.Client, index string, logger *logrus.Logger) *PropertyIndex {
	return &PropertyIndex{ES: es, IndexName: index, Logger: logger}
}

type propertyDoc struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Address     string    `json:"address"`
	Type        string    `json:"type"`
	Price       int64     `json:"price"`
	Bedrooms    int       `json:"bedrooms"`
	Features    []string  `json:"features"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDoc(p entity.Property) propertyDoc {
	return propertyDoc{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		City:        p.Location.City,
		State:       p.Location.State,
		Address:     p.Location.Address,
		Type:        string(p.Type),
		Price:       p.Price,
		Bedrooms:    p.Bedrooms,
		Features:    p.Features,
		CreatedAt:   p.CreatedAt,
	}
}

func (x *PropertyIndex) enabled() bool {
	return x != nil && x.ES != nil && x.IndexName != ""
}

func (x *PropertyIndex) Index(ctx context.Context, p entity.Property) error {
	if !x.enabled() {
		return nil
	}
	b, err := json.Marshal(toDoc(p))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: x.IndexName, DocumentID: p.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		if x.Logger != nil {
			x.Logger.WithField("status", res.Status()).WithField("property_id", p.ID).Warn("es index response error")
		}
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

// Search runs a multi_match over the text fields and returns hit ids in
// score order.
func (x *PropertyIndex) Search(ctx context.Context, q string, size int) ([]string, error) {
	if !x.enabled() {
		return []string{}, nil
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"title^3", "city^2", "state", "address", "description", "features"},
				"fuzziness": "AUTO",
			},
		},
		"size":    size,
		"_source": false,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := x.ES.Search(
		x.ES.Search.WithContext(c),
		x.ES.Search.WithIndex(x.IndexName),
		x.ES.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}
