package yaml_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gomold "github.com/reoring/gomold"
	"github.com/reoring/gomold/dsl"
	"github.com/reoring/gomold/source/yaml"
)

func TestUnmarshal_NormalizesTree(t *testing.T) {
	doc := []byte("name: cache\nlimits:\n  cpu: 2\n  memory: 512.5\nports:\n  - 80\n  - 443\n")
	tree, err := yaml.Driver().Unmarshal(doc)
	require.NoError(t, err)

	m, ok := tree.(map[string]any)
	require.True(t, ok, "root must normalize to map[string]any, got %T", tree)
	assert.Equal(t, "cache", m["name"])

	limits, ok := m["limits"].(map[string]any)
	require.True(t, ok, "nested mapping must normalize, got %T", m["limits"])
	assert.Equal(t, 2, limits["cpu"])
	assert.Equal(t, 512.5, limits["memory"])

	ports, ok := m["ports"].([]any)
	require.True(t, ok, "sequence must normalize to []any, got %T", m["ports"])
	assert.Len(t, ports, 2)
}

func TestUnmarshal_RejectsNonStringKeys(t *testing.T) {
	_, err := yaml.Driver().Unmarshal([]byte("1: one\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a string")
}

func TestName(t *testing.T) {
	assert.Equal(t, "yaml", yaml.Driver().Name())
}

type Service struct {
	Name     string   `json:"name"`
	Replicas int      `json:"replicas"`
	Weight   float64  `json:"weight"`
	Tags     []string `json:"tags"`
}

var serviceSchema = dsl.MustBind[Service](dsl.Struct().
	Field("name", dsl.String()).
	Field("replicas", dsl.Int()).
	Field("weight", dsl.Float64()).
	Field("tags", dsl.SliceOf(dsl.String())))

func TestDriverSwap_UnmarshalYAML(t *testing.T) {
	gomold.SetDriver(yaml.Driver())
	defer gomold.UseDefaultDriver()

	doc := []byte("name: edge\nreplicas: 3\nweight: 0.25\ntags:\n  - eu\n  - fast\n")
	svc, err := gomold.Unmarshal[Service](context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, Service{
		Name:     "edge",
		Replicas: 3,
		Weight:   0.25,
		Tags:     []string{"eu", "fast"},
	}, svc)
}

func TestDriverSwap_MarshalYAML(t *testing.T) {
	gomold.SetDriver(yaml.Driver())
	defer gomold.UseDefaultDriver()

	ctx := context.Background()
	in := Service{Name: "edge", Replicas: 3, Weight: 0.25, Tags: []string{"eu"}}
	data, err := serviceSchema.Marshal(ctx, in)
	require.NoError(t, err)

	back, err := serviceSchema.Unmarshal(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}
