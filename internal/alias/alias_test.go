package alias

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/harrison/boostcfg/internal/diagnostic"
	"github.com/harrison/boostcfg/internal/logger"
)

func newReporter() *diagnostic.Reporter {
	return diagnostic.NewReporter(logger.NewNoOpLogger())
}

func TestCatalogHasNoCollisions(t *testing.T) {
	seen := make(map[string]string)
	for _, param := range Parameters() {
		_, dup := seen[param.Name]
		require.False(t, dup, "duplicate name %s", param.Name)
		seen[param.Name] = param.Name
	}
	for _, param := range Parameters() {
		for _, a := range param.Aliases {
			owner, dup := seen[a]
			require.False(t, dup, "alias %s of %s collides with %s", a, param.Name, owner)
			seen[a] = param.Name
		}
	}
}

func TestCanonical(t *testing.T) {
	name, ok := Canonical("num_leaf")
	assert.True(t, ok)
	assert.Equal(t, "num_leaves", name)

	name, ok = Canonical("num_leaves")
	assert.True(t, ok)
	assert.Equal(t, "num_leaves", name)

	_, ok = Canonical("not_a_param")
	assert.False(t, ok)

	assert.True(t, IsParameter("objective"))
	assert.False(t, IsParameter("loss"))
}

func TestLess(t *testing.T) {
	assert.True(t, Less("num_leaf", "max_leaves"))
	assert.True(t, Less("max_leaf", "num_leaf"))
	assert.False(t, Less("num_leaf", "max_leaf"))
	assert.False(t, Less("a", "a"))
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]string
		want     map[string]string
		warnings []string
	}{
		{
			name:  "alias rewritten",
			input: map[string]string{"num_leaf": "5", "application": "binary"},
			want:  map[string]string{"num_leaves": "5", "objective": "binary"},
		},
		{
			name:  "canonical passes through",
			input: map[string]string{"num_leaves": "31"},
			want:  map[string]string{"num_leaves": "31"},
		},
		{
			name:  "canonical beats alias",
			input: map[string]string{"num_leaves": "31", "num_leaf": "5"},
			want:  map[string]string{"num_leaves": "31"},
			warnings: []string{
				"num_leaves is set=31, num_leaf=5 will be ignored. Current value: num_leaves=31",
			},
		},
		{
			name:  "shortest alias wins",
			input: map[string]string{"max_leaves": "7", "num_leaf": "5"},
			want:  map[string]string{"num_leaves": "5"},
			warnings: []string{
				"num_leaves is set with num_leaf=5, max_leaves=7 will be ignored. Current value: num_leaves=5",
			},
		},
		{
			name:  "equal length aliases ordered lexicographically",
			input: map[string]string{"num_leaf": "5", "max_leaf": "9"},
			want:  map[string]string{"num_leaves": "9"},
			warnings: []string{
				"num_leaves is set with max_leaf=9, num_leaf=5 will be ignored. Current value: num_leaves=9",
			},
		},
		{
			name:  "unknown key kept",
			input: map[string]string{"foo": "bar", "seed": "1"},
			want:  map[string]string{"foo": "bar", "seed": "1"},
			warnings: []string{
				"Unknown parameter: foo",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := newReporter()
			got := Canonicalize(tt.input, rep)
			assert.Equal(t, tt.want, got)

			var msgs []string
			for _, d := range rep.Diags.WarningsFor(CodeAlias) {
				msgs = append(msgs, d.Message)
			}
			assert.Equal(t, tt.warnings, msgs)
		})
	}
}

func TestCanonicalizeDoesNotMutateInput(t *testing.T) {
	in := map[string]string{"num_leaf": "5"}
	_ = Canonicalize(in, newReporter())
	assert.Equal(t, map[string]string{"num_leaf": "5"}, in)
}

func TestObjectiveAlias(t *testing.T) {
	tests := map[string]string{
		"mse":            "regression",
		"l2_root":        "regression",
		"rmse":           "regression",
		"mae":            "regression_l1",
		"softmax":        "multiclass",
		"ovr":            "multiclassova",
		"xentropy":       "cross_entropy",
		"xentlambda":     "cross_entropy_lambda",
		"mape":           "mape",
		"xe_ndcg_mart":   "rank_xendcg",
		"none":           "custom",
		"na":             "custom",
		"binary":         "binary",
		"something_else": "something_else",
	}
	for in, want := range tests {
		assert.Equal(t, want, ObjectiveAlias(in), in)
	}
	assert.True(t, IsKnownObjective("lambdarank"))
	assert.False(t, IsKnownObjective("mse"))
}

func TestMetricAlias(t *testing.T) {
	tests := map[string]string{
		"regression":             "l2",
		"mse":                    "l2",
		"l2_root":                "rmse",
		"mae":                    "l1",
		"binary":                 "binary_logloss",
		"lambdarank":             "ndcg",
		"xendcg":                 "ndcg",
		"mean_average_precision": "map",
		"multiclassova":          "multi_logloss",
		"kldiv":                  "kullback_leibler",
		"null":                   "custom",
		"auc":                    "auc",
	}
	for in, want := range tests {
		assert.Equal(t, want, MetricAlias(in), in)
	}
	assert.True(t, IsKnownMetric("auc_mu"))
	assert.False(t, IsKnownMetric("accuracy"))
}

func TestDump(t *testing.T) {
	out := Dump()

	require.True(t, strings.HasPrefix(out, "{\n   \"config\": [\"config_file\"]\n   , \"task\": [\"task_type\"]\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "\n   , \"num_leaves\": [\"max_leaf\", \"num_leaf\", \"max_leaves\", \"max_leaf_nodes\"]\n")
	assert.Contains(t, out, "\n   , \"multi_error_top_k\": []\n")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, len(Parameters())+2)
}

func TestDumpLeavesCatalogOrderUntouched(t *testing.T) {
	_ = Dump()
	for _, param := range catalog {
		if param.Name == "num_leaves" {
			assert.Equal(t, []string{"num_leaf", "max_leaves", "max_leaf", "max_leaf_nodes"}, param.Aliases)
		}
	}
}

func TestDumpYAML(t *testing.T) {
	out, err := DumpYAML()
	require.NoError(t, err)
	assert.Contains(t, out, "num_leaves: [max_leaf, num_leaf, max_leaves, max_leaf_nodes]")

	var decoded map[string][]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, len(Parameters()))
	assert.Equal(t, []string{"config_file"}, decoded["config"])
	assert.Empty(t, decoded["multi_error_top_k"])
}
