package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/pkg/gen"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	_ "github.com/leapstack-labs/smartgen/pkg/lint/rules" // register rules
)

func TestCatalog_Complete(t *testing.T) {
	want := map[string]int{"EN": 9, "ST": 12, "KM": 7, "EX": 7, "CM": 5, "DP": 1}
	got := make(map[string]int)
	for _, r := range lint.GetAll() {
		got[r.ID[:2]]++
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 41, lint.Count())
}

func TestCatalog_Definitions(t *testing.T) {
	kinds := make(map[string]bool)
	for _, k := range gen.KindOrder {
		kinds[k] = true
	}
	names := make(map[string]string)

	for _, r := range lint.GetAll() {
		t.Run(r.ID, func(t *testing.T) {
			require.NotNil(t, r.Check)
			assert.NotEmpty(t, r.Description)
			assert.NotEmpty(t, r.Rationale)
			assert.Equal(t, r.Arity, strings.Count(r.MessageFormat, "%s"),
				"message format must have one verb per argument")
			assert.NotContains(t, strings.ReplaceAll(r.MessageFormat, "%s", ""), "%")
			assert.True(t, strings.HasPrefix(r.Name, r.Group+"."), "name %q not in group %q", r.Name, r.Group)
			if prev, dup := names[r.Name]; dup {
				t.Errorf("name %q used by %s and %s", r.Name, prev, r.ID)
			}
			names[r.Name] = r.ID
			for _, b := range r.Blocks {
				assert.True(t, b == lint.BlockAll || kinds[b], "unknown fragment kind %q", b)
			}
		})
	}
}

func TestCatalog_Fixable(t *testing.T) {
	var fixable []string
	for _, r := range lint.GetAll() {
		if r.Fixable {
			fixable = append(fixable, r.ID)
		}
	}
	assert.Equal(t, []string{"CM04", "CM05", "EN01", "EN03", "EN08", "ST01", "ST02", "ST08", "ST09"}, fixable)
}

func TestCatalog_Groups(t *testing.T) {
	assert.Equal(t, []string{"comparer", "dispatch", "enum", "extension", "keymember", "structure"}, lint.Groups())
}
