package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jteoh/invsplit/internal/common"
	"github.com/jteoh/invsplit/internal/model"
)

func TestLoadSplitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadSplitConfig()
	require.NoError(t, err)

	assert.Equal(t, "template/Template.xlsx", cfg.TemplatePath)
	assert.Equal(t, "output/companies", cfg.OutputDir)
	require.Len(t, cfg.Sources, 3)
	assert.Equal(t, model.SourcePrimaryInvoice, cfg.Sources[0].Kind)
	assert.Equal(t, model.SourceStatementOfAccount, cfg.Sources[1].Kind)
	assert.Equal(t, model.SourceCategorizedInvoice, cfg.Sources[2].Kind)
	assert.True(t, cfg.Sources[2].SortByCategory)
	for i, src := range cfg.Sources {
		assert.Equal(t, i+1, src.NamePriority)
		assert.Equal(t, i+1, src.SourceOrder)
	}
}

func TestLoadSplitConfigFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("split.template", "custom/Template.xlsx")
	viper.Set("split.output_dir", "out")
	viper.Set("split.sources", []map[string]any{
		{
			"path":          "in/a.pdf",
			"kind":          "primary_invoice",
			"name_priority": 1,
			"source_order":  1,
		},
		{
			"path":             "in/b.pdf",
			"kind":             "categorized_invoice",
			"name_priority":    2,
			"source_order":     2,
			"sort_by_category": true,
		},
	})

	cfg, err := LoadSplitConfig()
	require.NoError(t, err)
	assert.Equal(t, "custom/Template.xlsx", cfg.TemplatePath)
	assert.Equal(t, "out", cfg.OutputDir)
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, "in/a.pdf", cfg.Sources[0].Path)
	assert.True(t, cfg.Sources[1].SortByCategory)
}

func TestLoadSplitConfigRejectsBadKind(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("split.sources", []map[string]any{
		{
			"path":          "in/a.pdf",
			"kind":          "spreadsheet",
			"name_priority": 1,
			"source_order":  1,
		},
	})

	_, err := LoadSplitConfig()
	assert.Error(t, err)
}

func TestLoadSplitConfigRejectsMissingPath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("split.sources", []map[string]any{
		{
			"kind":          "primary_invoice",
			"name_priority": 1,
			"source_order":  1,
		},
	})

	_, err := LoadSplitConfig()
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestLoadSplitConfigRejectsMissingPriority(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("split.sources", []map[string]any{
		{
			"path":         "in/a.pdf",
			"kind":         "primary_invoice",
			"source_order": 1,
		},
	})

	_, err := LoadSplitConfig()
	assert.Error(t, err)
}
