package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func TestRegistry(t *testing.T) {
	reg := testRegistry(typeRule, itemRule)
	assert.Equal(t, 2, reg.Count())

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "TS01", all[0].ID)
	assert.Equal(t, "TS02", all[1].ID)

	rule, ok := reg.ByID("TS02")
	require.True(t, ok)
	assert.Equal(t, "test.type", rule.Name)

	_, ok = reg.ByID("TS99")
	assert.False(t, ok)

	assert.Len(t, reg.ByGroup("test"), 2)
	assert.Empty(t, reg.ByGroup("other"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	reg := testRegistry(typeRule)
	assert.Panics(t, func() { reg.Register(typeRule) })
}

func TestRuleDef_Info(t *testing.T) {
	info := itemRule.Info()
	assert.Equal(t, "TS01", info.ID)
	assert.Equal(t, []string{"Enum"}, info.Categories)
	assert.Equal(t, 1, info.Arity)
	assert.Equal(t, lint.SeverityWarning, info.DefaultSeverity)
}
