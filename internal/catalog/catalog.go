package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jwschwaner/calorietracker-app/internal/models"
)

//go:embed ingredients.json
var ingredientsJSON []byte

type dataset struct {
	Ingredients []models.Ingredient `json:"ingredients"`
}

// Catalog is the static set of known ingredients. It is loaded once at
// startup and never mutated afterwards.
type Catalog struct {
	ingredients []models.Ingredient
}

func New(ingredients []models.Ingredient) *Catalog {
	return &Catalog{ingredients: ingredients}
}

// LoadBundled parses the ingredient dataset shipped with the binary.
func LoadBundled() (*Catalog, error) {
	var ds dataset
	if err := json.Unmarshal(ingredientsJSON, &ds); err != nil {
		return nil, fmt.Errorf("parse bundled ingredients: %w", err)
	}
	return New(ds.Ingredients), nil
}

// All returns every ingredient in catalog order. The result is a copy;
// mutating it does not touch the catalog.
func (c *Catalog) All() []models.Ingredient {
	out := make([]models.Ingredient, len(c.ingredients))
	copy(out, c.ingredients)
	return out
}

// FindByName is a case-insensitive exact match.
func (c *Catalog) FindByName(name string) (models.Ingredient, bool) {
	for _, ing := range c.ingredients {
		if strings.EqualFold(ing.Name, name) {
			return ing, true
		}
	}
	return models.Ingredient{}, false
}

// Search returns every ingredient whose name contains the query,
// case-insensitively, in catalog order. A blank query matches nothing
// rather than the whole catalog.
func (c *Catalog) Search(query string) []models.Ingredient {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matches []models.Ingredient
	for _, ing := range c.ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			matches = append(matches, ing)
		}
	}
	return matches
}
