package rag

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
)

//go:embed products.json
var defaultCatalog []byte

// Product is one drinkware catalog entry.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	Description     string   `json:"description"`
	PriceMYR        float64  `json:"price_myr"`
	CapacityML      int      `json:"capacity_ml"`
	Material        string   `json:"material"`
	Features        []string `json:"features"`
	Colors          []string `json:"colors"`
	InStock         bool     `json:"in_stock"`
	SimilarityScore float64  `json:"similarity_score,omitempty"`
}

// Store holds the product catalog and its fitted vectors.
type Store struct {
	embedder *Embedder
	products []Product
	vectors  [][]float64
}

// NewStore builds a store from the embedded default catalog.
func NewStore() (*Store, error) {
	return NewStoreFromJSON(defaultCatalog)
}

// NewStoreFromFile builds a store from a catalog JSON file on disk.
func NewStoreFromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product catalog: %w", err)
	}
	return NewStoreFromJSON(data)
}

// NewStoreFromJSON builds a store from raw catalog JSON and fits the
// embedder over the searchable fields of every product.
func NewStoreFromJSON(data []byte) (*Store, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse product catalog: %w", err)
	}

	embedder := NewEmbedder()

	texts := make([]string, len(products))
	for i, p := range products {
		texts[i] = searchText(p)
	}
	embedder.Fit(texts)

	vectors := make([][]float64, len(products))
	for i, text := range texts {
		vectors[i] = embedder.Embed(text)
	}

	return &Store{
		embedder: embedder,
		products: products,
		vectors:  vectors,
	}, nil
}

// searchText joins the fields worth matching against into one document.
func searchText(p Product) string {
	parts := []string{p.Name, p.Description, p.Category, p.Subcategory, p.Material}
	parts = append(parts, p.Features...)
	parts = append(parts, p.Colors...)

	var joined string
	for i, s := range parts {
		if i > 0 {
			joined += " "
		}
		joined += s
	}
	return joined
}

// Search returns the topK most similar products, best first, each carrying
// its similarity score rounded to three decimals.
func (s *Store) Search(query string, topK int) []Product {
	if len(s.products) == 0 || topK <= 0 {
		return nil
	}

	queryVec := s.embedder.Embed(query)

	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, len(s.vectors))
	for i, vec := range s.vectors {
		ranked[i] = scored{idx: i, score: Similarity(queryVec, vec)}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	if topK > len(ranked) {
		topK = len(ranked)
	}
	results := make([]Product, 0, topK)
	for _, r := range ranked[:topK] {
		p := s.products[r.idx]
		p.SimilarityScore = math.Round(r.score*1000) / 1000
		results = append(results, p)
	}
	return results
}

// All returns a copy of the full catalog.
func (s *Store) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID returns the product with the given ID, or nil.
func (s *Store) ByID(id string) *Product {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// Len returns the catalog size.
func (s *Store) Len() int {
	return len(s.products)
}
