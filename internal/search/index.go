package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/project_marketplace/internal/models"
)

type Index struct {
	ES   *elasticsearch.Client
	Name string
}

func (i *Index) IndexProject(ctx context.Context, p *models.Project) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}

	res, err := i.ES.Index(
		i.Name,
		bytes.NewReader(b),
		i.ES.Index.WithContext(ctx),
		i.ES.Index.WithDocumentID(docID(p.ID)),
	)
	if err != nil {
		return fmt.Errorf("index project %d: %w", p.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index project %d: %s", p.ID, res.Status())
	}
	return nil
}

func (i *Index) DeleteProject(ctx context.Context, id uint) error {
	res, err := i.ES.Delete(i.Name, docID(id), i.ES.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete project %d: %s", id, res.Status())
	}
	return nil
}

func (i *Index) SearchProjects(ctx context.Context, query string, from, size int) (int64, []models.Project, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(buildQuery(query, from, size)); err != nil {
		return 0, nil, err
	}

	res, err := i.ES.Search(
		i.ES.Search.WithContext(ctx),
		i.ES.Search.WithIndex(i.Name),
		i.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct{ Value int64 } `json:"total"`
			Hits  []struct {
				Source models.Project `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	projects := make([]models.Project, len(r.Hits.Hits))
	for n, hit := range r.Hits.Hits {
		projects[n] = hit.Source
	}
	return r.Hits.Total.Value, projects, nil
}

func buildQuery(query string, from, size int) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"topic^2", "subject", "college", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}
}

func docID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
