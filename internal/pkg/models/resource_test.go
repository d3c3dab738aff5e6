package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceTypeHas(t *testing.T) {
	set := ResourceBalance | ResourceTransactions

	assert.True(t, set.Has(ResourceBalance))
	assert.True(t, set.Has(ResourceTransactions))
	assert.False(t, set.Has(ResourceAccount))
	assert.True(t, ResourceAll.Has(ResourceDirectDebits))
}

func TestResourceTypeString(t *testing.T) {
	assert.Equal(t, "balance", ResourceBalance.String())
	assert.Equal(t, "all", ResourceAll.String())
	assert.Equal(t, "none", ResourceType(0).String())
	assert.Equal(t, "account,transactions", (ResourceAccount | ResourceTransactions).String())
}

func TestParseResourceTypes(t *testing.T) {
	t.Run("empty means all", func(t *testing.T) {
		set, err := ParseResourceTypes("")
		require.NoError(t, err)
		assert.Equal(t, ResourceAll, set)
	})

	t.Run("comma separated list", func(t *testing.T) {
		set, err := ParseResourceTypes("balance, transactions")
		require.NoError(t, err)
		assert.Equal(t, ResourceBalance|ResourceTransactions, set)
	})

	t.Run("all wins over the rest", func(t *testing.T) {
		set, err := ParseResourceTypes("balance,all")
		require.NoError(t, err)
		assert.Equal(t, ResourceAll, set)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseResourceTypes("balance,loans")
		assert.Error(t, err)
	})
}
