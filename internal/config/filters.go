package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Filters holds the per-source search templates that used to live as
// importable constants in the scraping scripts. Values here are defaults;
// an optional YAML file overrides only the keys it sets.
type Filters struct {
	// Departments restricts the run to a subset of partitions. Empty = all.
	Departments []string `yaml:"departments"`

	Notaires struct {
		TransactionTypes string `yaml:"transaction_types"`
	} `yaml:"notaires"`

	BienICI struct {
		FilterType    string   `yaml:"filter_type"`
		PropertyTypes []string `yaml:"property_types"`
		SortBy        string   `yaml:"sort_by"`
		SortOrder     string   `yaml:"sort_order"`
	} `yaml:"bienici"`

	SeLoger struct {
		DistributionTypes []string `yaml:"distribution_types"`
		EstateTypes       []string `yaml:"estate_types"`
		ProjectTypes      []string `yaml:"project_types"`
	} `yaml:"seloger"`
}

// DefaultFilters mirrors what the sources were scraped with historically.
func DefaultFilters() Filters {
	var f Filters
	f.Notaires.TransactionTypes = "VENTE,VNI,VAE"

	f.BienICI.FilterType = "buy"
	f.BienICI.PropertyTypes = []string{"house", "flat", "loft", "castle", "townhouse"}
	f.BienICI.SortBy = "relevance"
	f.BienICI.SortOrder = "desc"

	f.SeLoger.DistributionTypes = []string{"Buy", "Buy_Auction", "Compulsory_Auction"}
	f.SeLoger.EstateTypes = []string{"House", "Apartment"}
	f.SeLoger.ProjectTypes = []string{"Life_Annuity", "New_Build", "Projected", "Resale"}
	return f
}

// LoadFilters returns the defaults overlaid with the YAML file at path.
// A missing path (or empty string) is not an error: defaults apply.
func LoadFilters(path string) (Filters, error) {
	f := DefaultFilters()
	if path == "" {
		return f, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, fmt.Errorf("config: read filters %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("config: parse filters %s: %w", path, err)
	}
	return f, nil
}
