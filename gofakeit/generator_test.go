package gofakeit_test

import (
	"testing"

	meshmcp "github.com/lukeylias/MeshMCP"
	"github.com/lukeylias/MeshMCP/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("members carry the expected fields", func(t *testing.T) {
		t.Parallel()

		gen := gofakeit.NewGenerator(11)
		records, err := gen.Generate(meshmcp.DataMembers, 5)
		require.NoError(t, err)
		require.Len(t, records, 5)

		for _, r := range records {
			assert.Contains(t, r["memberNumber"], "MBR")
			assert.NotEmpty(t, r["firstName"])
			assert.NotEmpty(t, r["email"])

			address, ok := r["address"].(map[string]any)
			require.True(t, ok)
			assert.Contains(t, []string{"NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT"}, address["state"])
		}
	})

	t.Run("policies carry benefit and limit groups", func(t *testing.T) {
		t.Parallel()

		gen := gofakeit.NewGenerator(11)
		records, err := gen.Generate(meshmcp.DataPolicies, 3)
		require.NoError(t, err)
		require.Len(t, records, 3)

		for _, r := range records {
			assert.Contains(t, r["policyNumber"], "POL")

			benefits, ok := r["benefits"].(map[string]any)
			require.True(t, ok)
			assert.Contains(t, benefits, "hospitalCover")

			monthly, ok := r["monthlyPremium"].(int)
			require.True(t, ok)
			assert.Equal(t, monthly*12, r["annualPremium"])
		}
	})

	t.Run("claims carry amounts and provider details", func(t *testing.T) {
		t.Parallel()

		gen := gofakeit.NewGenerator(11)
		records, err := gen.Generate(meshmcp.DataClaims, 3)
		require.NoError(t, err)

		for _, r := range records {
			assert.Contains(t, r["claimNumber"], "CLM")
			assert.NotEmpty(t, r["claimType"])
			assert.NotEmpty(t, r["providerName"])

			total, ok := r["totalAmount"].(float64)
			require.True(t, ok)
			assert.GreaterOrEqual(t, total, 50.0)
			assert.LessOrEqual(t, total, 2000.0)
		}
	})

	t.Run("providers carry services and accreditation", func(t *testing.T) {
		t.Parallel()

		gen := gofakeit.NewGenerator(11)
		records, err := gen.Generate(meshmcp.DataProviders, 3)
		require.NoError(t, err)

		for _, r := range records {
			assert.Contains(t, r["providerNumber"], "PRV")

			services, ok := r["services"].([]string)
			require.True(t, ok)
			assert.GreaterOrEqual(t, len(services), 2)
			assert.LessOrEqual(t, len(services), 5)

			rating, ok := r["rating"].(float64)
			require.True(t, ok)
			assert.GreaterOrEqual(t, rating, 3.5)
			assert.LessOrEqual(t, rating, 5.0)
		}
	})

	t.Run("zero count defaults to ten", func(t *testing.T) {
		t.Parallel()

		gen := gofakeit.NewGenerator(11)
		records, err := gen.Generate(meshmcp.DataMembers, 0)
		require.NoError(t, err)
		assert.Len(t, records, 10)
	})

	t.Run("count above the cap is rejected", func(t *testing.T) {
		t.Parallel()

		gen := gofakeit.NewGenerator(11)
		_, err := gen.Generate(meshmcp.DataMembers, 101)
		require.Error(t, err)
		assert.Equal(t, meshmcp.EINVALID, meshmcp.ErrorCode(err))
	})

	t.Run("negative count is rejected", func(t *testing.T) {
		t.Parallel()

		gen := gofakeit.NewGenerator(11)
		_, err := gen.Generate(meshmcp.DataMembers, -1)
		require.Error(t, err)
		assert.Equal(t, meshmcp.EINVALID, meshmcp.ErrorCode(err))
	})

	t.Run("unsupported type is rejected", func(t *testing.T) {
		t.Parallel()

		gen := gofakeit.NewGenerator(11)
		_, err := gen.Generate("vehicles", 5)
		require.Error(t, err)
		assert.Equal(t, meshmcp.EINVALID, meshmcp.ErrorCode(err))
	})

	t.Run("fixed seed is reproducible", func(t *testing.T) {
		t.Parallel()

		a, err := gofakeit.NewGenerator(42).Generate(meshmcp.DataMembers, 3)
		require.NoError(t, err)
		b, err := gofakeit.NewGenerator(42).Generate(meshmcp.DataMembers, 3)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
