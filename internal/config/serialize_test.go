package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringHeadline(t *testing.T) {
	c, _ := mustBuild(t, "objective=binary metric=auc,binary_logloss")
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")

	require.Len(t, lines, len(Fields()))
	assert.Equal(t, []string{
		"[boosting: gbdt]",
		"[objective: binary]",
		"[metric: auc,binary_logloss]",
		"[tree_learner: serial]",
		"[device_type: cpu]",
	}, lines[:5])
	assert.Equal(t, "[alpha: 0.9]", lines[5], "remaining parameters are sorted by name")
}

func TestStringValues(t *testing.T) {
	c, _ := mustBuild(t, "eval_at=5,1 valid=a.txt,b.txt label_gain=0,1.5 header=true task=predict min_sum_hessian_in_leaf=1e-7")
	dump := c.String()

	for _, want := range []string{
		"[eval_at: 1,5]\n",
		"[valid: a.txt,b.txt]\n",
		"[label_gain: 0,1.5]\n",
		"[header: true]\n",
		"[use_missing: true]\n",
		"[zero_as_missing: false]\n",
		"[task: predict]\n",
		"[min_sum_hessian_in_leaf: 1e-07]\n",
		"[learning_rate: 0.1]\n",
		"[histogram_pool_size: -1]\n",
		"[monotone_constraints: ]\n",
		"[config: ]\n",
	} {
		assert.Contains(t, dump, want)
	}
	assert.Equal(t, 1, strings.Count(dump, "[metric:"))
}

func TestParseDump(t *testing.T) {
	raw, err := ParseDump("[boosting: dart]\n\n  [machines: 10.0.0.1:80]  \n[metric: ]\n[data: my file.txt]\n")
	require.NoError(t, err)

	v, _ := raw.First("boosting")
	assert.Equal(t, "dart", v)
	v, _ = raw.First("machines")
	assert.Equal(t, "10.0.0.1:80", v)
	v, _ = raw.First("metric")
	assert.Equal(t, ",", v, "an empty metric list stays empty on rebuild")
	v, _ = raw.First("data")
	assert.Equal(t, "my file.txt", v)
	assert.Equal(t, []string{"boosting", "machines", "metric", "data"}, raw.Keys())
}

func TestParseDumpErrors(t *testing.T) {
	_, err := ParseDump("[boosting: gbdt]\nboosting=gbdt\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ParseDump("[: x]\n")
	assert.Error(t, err)

	_, err = ParseDump("[no separator]\n")
	assert.Error(t, err)
}

func TestWriteReference(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteReference(buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Parameters\n"))
	assert.Contains(t, out, "\n## Core Parameters\n")
	assert.Contains(t, out, "\n## GPU Parameters\n")
	assert.Contains(t, out, "| `num_leaves` | int | `31` | > 1 && <= 131072 | `max_leaf`, `num_leaf`, `max_leaves`, `max_leaf_nodes` |")
	assert.Contains(t, out, "| `task` | enum | `train` |  | `task_type` |")
	assert.Contains(t, out, "| `valid` | multi-string |  |  |")
	assert.Equal(t, len(Fields()), strings.Count(out, "\n| `"))
}

func TestStringUnknownParametersLast(t *testing.T) {
	c, _ := mustBuild(t, "zeta_flag=1 alpha_flag=two num_leaves=10")
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")

	require.Len(t, lines, len(Fields())+2)
	assert.Equal(t, []string{"[alpha_flag: two]", "[zeta_flag: 1]"}, lines[len(lines)-2:])

	raw, err := ParseDump(c.String())
	require.NoError(t, err)
	again, err := FromRawSet(raw, NewBuildContext(nil))
	require.NoError(t, err)
	assert.Equal(t, c.Unknown, again.Unknown)
}
