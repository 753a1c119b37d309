package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

func TestColumnType_SQLType(t *testing.T) {
	assert.Equal(t, "TEXT", inventory.ColumnText.SQLType())
	assert.Equal(t, "BIGINT", inventory.ColumnBigint.SQLType())
	assert.Equal(t, "DOUBLE PRECISION", inventory.ColumnDouble.SQLType())
}

func TestPipelineConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := inventory.PipelineConfig{
			DataDir:          "data",
			ConnectionString: "postgresql://localhost/inventory",
		}
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing everything collects all failures", func(t *testing.T) {
		cfg := inventory.PipelineConfig{ChunkSize: -1}
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, inventory.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "DataDir")
		assert.Contains(t, err.Error(), "ConnectionString")
		assert.Contains(t, err.Error(), "chunk size")
	})
}

func TestReportConfig_Validate(t *testing.T) {
	t.Run("confidence defaults", func(t *testing.T) {
		cfg := inventory.ReportConfig{ConnectionString: "postgresql://localhost/inventory"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, inventory.DefaultConfidence, cfg.Confidence)
	})

	t.Run("confidence out of range", func(t *testing.T) {
		cfg := inventory.ReportConfig{
			ConnectionString: "postgresql://localhost/inventory",
			Confidence:       1.5,
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, inventory.ErrInvalidConfig)
	})

	t.Run("missing connection", func(t *testing.T) {
		cfg := inventory.ReportConfig{}
		assert.ErrorIs(t, cfg.Validate(), inventory.ErrInvalidConfig)
	})
}
