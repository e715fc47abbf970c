package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jteoh/invsplit/internal/common"
	"github.com/jteoh/invsplit/internal/model"
)

// SplitConfig holds everything a split run needs: the source documents with
// their priorities, the report template, and the output locations.
type SplitConfig struct {
	Sources      []model.SourceConfig
	TemplatePath string
	OutputDir    string
	LedgerPath   string
}

// sourceSpec is the config-file shape of one source entry.
type sourceSpec struct {
	Path           string `mapstructure:"path"`
	Kind           string `mapstructure:"kind"`
	NamePriority   int    `mapstructure:"name_priority"`
	SourceOrder    int    `mapstructure:"source_order"`
	SortByCategory bool   `mapstructure:"sort_by_category"`
}

// DefaultSources returns the three standard billing sources in their
// standard priority order: the baseline invoice run names companies most
// reliably and leads the consolidated output; the itemized invoice run is
// category-sorted and comes last.
func DefaultSources() []model.SourceConfig {
	return []model.SourceConfig{
		{
			Path:         "input/INVOICE - CHSS.pdf",
			Kind:         model.SourcePrimaryInvoice,
			NamePriority: 1,
			SourceOrder:  1,
		},
		{
			Path:         "input/SOA - SHAREBIZ.pdf",
			Kind:         model.SourceStatementOfAccount,
			NamePriority: 2,
			SourceOrder:  2,
		},
		{
			Path:           "input/INVOICE - SHAREBIZ.pdf",
			Kind:           model.SourceCategorizedInvoice,
			NamePriority:   3,
			SourceOrder:    3,
			SortByCategory: true,
		},
	}
}

// LoadSplitConfig assembles the split configuration from Viper, falling back
// to the standard three-source setup when the config file defines none.
func LoadSplitConfig() (*SplitConfig, error) {
	cfg := &SplitConfig{
		TemplatePath: "template/Template.xlsx",
		OutputDir:    "output/companies",
		LedgerPath:   "output/invsplit.db",
	}

	if v := viper.GetString("split.template"); v != "" {
		cfg.TemplatePath = v
	}
	if v := viper.GetString("split.output_dir"); v != "" {
		cfg.OutputDir = v
	}
	if v := viper.GetString("split.ledger"); v != "" {
		cfg.LedgerPath = v
	}
	cfg.TemplatePath = ExpandPath(cfg.TemplatePath)
	cfg.OutputDir = ExpandPath(cfg.OutputDir)
	cfg.LedgerPath = ExpandPath(cfg.LedgerPath)

	var specs []sourceSpec
	if err := viper.UnmarshalKey("split.sources", &specs); err != nil {
		return nil, common.NewUserError("failed to parse split.sources", err)
	}

	if len(specs) == 0 {
		cfg.Sources = DefaultSources()
		return cfg, nil
	}

	for i, spec := range specs {
		if spec.Path == "" {
			return nil, fmt.Errorf("%w: split.sources[%d]: path is required", common.ErrMissingConfig, i)
		}
		kind, err := model.ParseSourceKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: split.sources[%d]: %v", common.ErrInvalidConfig, i, err)
		}
		src := model.SourceConfig{
			Path:           ExpandPath(spec.Path),
			Kind:           kind,
			NamePriority:   spec.NamePriority,
			SourceOrder:    spec.SourceOrder,
			SortByCategory: spec.SortByCategory,
		}
		if err := src.Validate(); err != nil {
			return nil, fmt.Errorf("%w: split.sources[%d]: %v", common.ErrInvalidConfig, i, err)
		}
		cfg.Sources = append(cfg.Sources, src)
	}
	return cfg, nil
}
