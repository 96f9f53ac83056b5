package sources

import (
	"fmt"

	"github.com/jobupdate/jobwire/internal/config"
	"github.com/jobupdate/jobwire/internal/types"
)

// Build constructs a registry from source definitions. Unknown types were
// already rejected by config validation; hitting one here is a bug.
func Build(cfgs []config.SourceConfig, verbose bool) (*Registry, error) {
	registry := NewRegistry()
	for _, cfg := range cfgs {
		src, err := build(cfg, verbose)
		if err != nil {
			return nil, err
		}
		registry.Register(src)
	}
	return registry, nil
}

func build(cfg config.SourceConfig, verbose bool) (Source, error) {
	category := types.Category(cfg.Category)
	if category == "" {
		category = types.CategoryGovt
	}

	switch cfg.Type {
	case "rss":
		return NewRSSSource(nameOr(cfg.Name, "rss"), cfg.URL, category), nil
	case "remoteok":
		return NewRemoteOKSource(cfg.URL), nil
	case "arbeitnow":
		return NewArbeitnowSource(cfg.URL), nil
	case "offcampus":
		return NewOffCampusSource(nameOr(cfg.Name, "offcampus"), cfg.URL, verbose), nil
	case "aggregator":
		return NewAggregatorSource(nameOr(cfg.Name, "aggregator"), cfg.URL, cfg.Selector, category), nil
	}
	return nil, fmt.Errorf("unknown source type %q", cfg.Type)
}

func nameOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
