package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/pkg/core"
	"github.com/leapstack-labs/smartgen/pkg/lint"
)

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"group", "category", "verbose", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommand_ListAll(t *testing.T) {
	out, _, err := execute(NewRulesCommand(), "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Rules (41)")
	assert.Contains(t, out, "Structure")
	assert.Contains(t, out, "Keymember")
	assert.Contains(t, out, "ST01")
	assert.Contains(t, out, "[fixable]")
}

func TestRulesCommand_FilterByGroup(t *testing.T) {
	out, _, err := execute(NewRulesCommand(), "--format", "markdown", "--group", "enum")
	require.NoError(t, err)

	assert.Contains(t, out, "## Enum")
	assert.Contains(t, out, "**EN01**")
	assert.NotContains(t, out, "**ST01**")
}

func TestRulesCommand_ShowSpecificRule(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		out, _, err := execute(NewRulesCommand(), "--format", "markdown", "ST01")
		require.NoError(t, err)
		assert.Contains(t, out, "# ST01 - structure.ctor_must_be_private")
		assert.Contains(t, out, "## How to Fix")
		assert.Contains(t, out, "```csharp")
	})

	t.Run("lower case id", func(t *testing.T) {
		out, _, err := execute(NewRulesCommand(), "--format", "text", "st01")
		require.NoError(t, err)
		assert.Contains(t, out, "ST01 - structure.ctor_must_be_private")
		assert.Contains(t, out, "smartgen fix")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(NewRulesCommand(), "--format", "json", "ST01")
		require.NoError(t, err)
		var info core.RuleInfo
		require.NoError(t, json.Unmarshal([]byte(out), &info))
		assert.Equal(t, "ST01", info.ID)
		assert.True(t, info.Fixable)
		assert.Equal(t, core.SeverityError, info.DefaultSeverity)
	})
}

func TestRulesCommand_NotFound(t *testing.T) {
	_, _, err := execute(NewRulesCommand(), "INVALID99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRulesCommand_JSON(t *testing.T) {
	out, _, err := execute(NewRulesCommand(), "--format", "json")
	require.NoError(t, err)

	var result RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, lint.Count(), result.Total)
	assert.Len(t, result.Rules, result.Total)
	assert.Equal(t, 12, result.Groups["structure"])
	assert.Equal(t, 9, result.Fixable)
}

func TestRulesCommand_Verbose(t *testing.T) {
	out, _, err := execute(NewRulesCommand(), "--format", "text", "--verbose", "--group", "structure")
	require.NoError(t, err)
	assert.Contains(t, out, "Why: ")
}

func TestFilterRulesByOptions(t *testing.T) {
	rules := []core.RuleInfo{
		{ID: "EN01", Group: "enum", Categories: []string{"Enum", "ValidatableEnum"}},
		{ID: "ST01", Group: "structure", Categories: []string{"Enum", "ValueObject"}},
		{ID: "DP01", Group: "dispatch"},
	}
	ids := func(rs []core.RuleInfo) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []string{"EN01", "ST01", "DP01"}, ids(filterRulesByOptions(rules, &RulesOptions{})))
	assert.Equal(t, []string{"EN01"}, ids(filterRulesByOptions(rules, &RulesOptions{Group: "Enum"})))
	assert.Equal(t, []string{"ST01", "DP01"}, ids(filterRulesByOptions(rules, &RulesOptions{Category: "valueobject"})))
	assert.Empty(t, filterRulesByOptions(rules, &RulesOptions{Group: "enum", Category: "Union"}))
}

func TestGroupTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"structure", "Structure"},
		{"key_member", "Key Member"},
		{"value-object", "Value Object"},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, groupTitle(tc.input))
		})
	}
}

func TestTruncateOneLine(t *testing.T) {
	assert.Equal(t, "short", truncateOneLine("short", 10))
	assert.Equal(t, "a b", truncateOneLine("a\nb", 10))
	assert.Equal(t, "abcdefg...", truncateOneLine("abcdefghijklmnop", 10))
}
