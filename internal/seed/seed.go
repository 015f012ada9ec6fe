// Package seed loads catalog seed data and saves it with upsert-by-name
// semantics so repeated runs converge on the same rows.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JaimeStill/storefront/internal/categories"
	"github.com/JaimeStill/storefront/internal/products"
)

//go:embed catalog.yaml
var catalog []byte

// ErrInvalid reports seed data that would violate catalog rules.
var ErrInvalid = errors.New("invalid seed data")

// Category is a seeded category, keyed by name.
type Category struct {
	Name string `yaml:"name"`
}

// Product is a seeded product. Categories reference category names.
type Product struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Price       float64   `yaml:"price"`
	ImgURL      string    `yaml:"img_url"`
	Date        time.Time `yaml:"date"`
	Categories  []string  `yaml:"categories"`
}

// Data is the full seed document.
type Data struct {
	Categories []Category `yaml:"categories"`
	Products   []Product  `yaml:"products"`
}

// Default returns the embedded catalog.
func Default() (*Data, error) {
	return Parse(catalog)
}

// Load reads file, or the embedded catalog when file is empty.
func Load(file string) (*Data, error) {
	if file == "" {
		return Default()
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(content)
}

// Parse decodes a YAML seed document. Unknown fields are rejected.
func Parse(content []byte) (*Data, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var data Data
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	if err := data.Validate(time.Now()); err != nil {
		return nil, err
	}
	return &data, nil
}

// Validate applies the same rules the API enforces on writes, plus name
// uniqueness within the document.
func (d *Data) Validate(now time.Time) error {
	seen := make(map[string]struct{}, len(d.Categories))
	for i := range d.Categories {
		c := &d.Categories[i]
		cmd := categories.CreateCommand{Name: c.Name}
		if err := cmd.Validate(); err != nil {
			return fmt.Errorf("%w: category %d: %v", ErrInvalid, i, err)
		}
		c.Name = cmd.Name
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalid, c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	names := make(map[string]struct{}, len(d.Products))
	for i := range d.Products {
		p := &d.Products[i]
		cmd := products.CreateCommand{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImgURL:      p.ImgURL,
			Date:        p.Date,
		}
		if err := cmd.Validate(now); err != nil {
			return fmt.Errorf("%w: product %q: %v", ErrInvalid, p.Name, err)
		}
		p.Name, p.Description, p.ImgURL = cmd.Name, cmd.Description, cmd.ImgURL

		if _, ok := names[p.Name]; ok {
			return fmt.Errorf("%w: duplicate product %q", ErrInvalid, p.Name)
		}
		names[p.Name] = struct{}{}

		for j, name := range p.Categories {
			p.Categories[j] = strings.TrimSpace(name)
		}
	}

	return nil
}
