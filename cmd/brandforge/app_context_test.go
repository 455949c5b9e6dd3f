package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/brandforge/internal/store"
)

func TestStoreSeedsPlanCatalog(t *testing.T) {
	flags := &rootFlags{configPath: writeTestConfig(t)}

	app, err := newAppContext(flags)
	require.NoError(t, err)
	defer app.Close()

	st, err := app.Store()
	require.NoError(t, err)

	plans, err := st.ListPlans(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, plans)
	assert.Equal(t, "free", plans[0].ID)
}

func TestGrantStarterCredits(t *testing.T) {
	flags := &rootFlags{configPath: writeTestConfig(t)}

	app, err := newAppContext(flags)
	require.NoError(t, err)
	defer app.Close()

	st, err := app.Store()
	require.NoError(t, err)

	require.NoError(t, grantStarterCredits(context.Background(), st, "u-9"))

	balance, err := st.GetCredits(context.Background(), "u-9")
	require.NoError(t, err)
	assert.Equal(t, store.DefaultPlans()[0].MonthlyCredits, balance)
}
