// Package seed loads starter content from a YAML file through the store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/01moynul/autoshop-golang/internal/store"
	"gopkg.in/yaml.v3"
)

// File is the layout of a seed document.
type File struct {
	Promos   []models.CreatePromoInput   `yaml:"promos"`
	Products []models.CreateProductInput `yaml:"products"`
	Articles []models.CreateArticleInput `yaml:"articles"`
}

// Result counts what Run inserted.
type Result struct {
	Promos   int
	Products int
	Articles int
}

// Load decodes a seed document. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &f, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Load(fh)
}

// Run inserts every entry of f using the store's create operations, so seeded rows
// pass the same validation as API requests. It stops at the first failure.
func Run(ctx context.Context, s *store.Store, f *File) (Result, error) {
	var res Result

	for i, input := range f.Promos {
		if _, err := s.CreatePromo(ctx, input); err != nil {
			return res, fmt.Errorf("promos[%d] %q: %w", i, input.Title, err)
		}
		res.Promos++
	}
	for i, input := range f.Products {
		if _, err := s.CreateProduct(ctx, input); err != nil {
			return res, fmt.Errorf("products[%d] %q: %w", i, input.Name, err)
		}
		res.Products++
	}
	for i, input := range f.Articles {
		if _, err := s.CreateArticle(ctx, input); err != nil {
			return res, fmt.Errorf("articles[%d] %q: %w", i, input.Title, err)
		}
		res.Articles++
	}

	s.Logger.Info("seed complete", "promos", res.Promos, "products", res.Products, "articles", res.Articles)
	return res, nil
}
