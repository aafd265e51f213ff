package bemgen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alertSchema() *Schema {
	return &Schema{Blocks: []Block{{
		Name:      "alert",
		Modifiers: []string{"success"},
		Elements:  []Element{{Name: "icon", Modifiers: []string{"large"}}},
	}}}
}

const alertSCSS = `.alert {
  &--success {
    // Styles for alert--success
  }
  &__icon {
    &--large {
      // Styles for alert__icon--large
    }
  }
}`

func TestRenderSCSS(t *testing.T) {
	got, warnings := RenderSCSS(alertSchema(), SCSSOptions{})
	assert.Empty(t, warnings)
	if diff := cmp.Diff(alertSCSS, got); diff != "" {
		t.Errorf("RenderSCSS mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, got, "@layer")
}

func TestRenderSCSSWithLayer(t *testing.T) {
	got, warnings := RenderSCSS(alertSchema(), SCSSOptions{Layer: Layer("components")})
	assert.Empty(t, warnings)

	var want strings.Builder
	want.WriteString("@layer components {\n")
	for _, line := range strings.Split(alertSCSS, "\n") {
		want.WriteString("  " + line + "\n")
	}
	want.WriteString("}")

	if diff := cmp.Diff(want.String(), got); diff != "" {
		t.Errorf("RenderSCSS mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSCSSLayerNames(t *testing.T) {
	tests := []struct {
		name      string
		layer     *string
		firstLine string
		warnings  []string
	}{
		{name: "no layer", layer: nil, firstLine: ".alert {"},
		{name: "empty layer", layer: Layer(""), firstLine: ".alert {", warnings: []string{EmptyLayerWarning}},
		{name: "dotted layer", layer: Layer("theme.components"), firstLine: "@layer theme.components {"},
		{name: "padded layer is verbatim", layer: Layer(" components "), firstLine: "@layer  components  {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := RenderSCSS(alertSchema(), SCSSOptions{Layer: tt.layer})
			assert.Equal(t, tt.firstLine, strings.SplitN(got, "\n", 2)[0])
			assert.Equal(t, tt.warnings, warnings)
		})
	}
}

func TestRenderSCSSEmptyLayerMatchesNoLayer(t *testing.T) {
	plain, _ := RenderSCSS(alertSchema(), SCSSOptions{})
	empty, _ := RenderSCSS(alertSchema(), SCSSOptions{Layer: Layer("")})
	assert.Equal(t, plain, empty)
}

func TestRenderSCSSLeafElements(t *testing.T) {
	schema := &Schema{Blocks: []Block{
		{
			Name:      "alert",
			Modifiers: []string{"success", "error", "warning"},
			Elements: []Element{
				{Name: "icon", Modifiers: []string{"large", "small"}},
				{Name: "content"},
			},
		},
		{
			Name:      "button",
			Modifiers: []string{"primary", "secondary"},
			Elements:  []Element{{Name: "label"}},
		},
	}}

	got, _ := RenderSCSS(schema, SCSSOptions{})

	assert.Contains(t, got, "  &__content {\n    // Styles for alert__content\n  }")
	assert.Contains(t, got, "  &__label {\n    // Styles for button__label\n  }")
	assert.Contains(t, got, "}\n.button {")
	assert.False(t, strings.HasSuffix(got, "\n"))

	// Modifiers before elements, in declaration order.
	assert.Less(t, strings.Index(got, "&--warning"), strings.Index(got, "&__icon"))
	assert.Less(t, strings.Index(got, "&--success"), strings.Index(got, "&--error"))
}

func TestRenderSCSSEmptySchema(t *testing.T) {
	got, warnings := RenderSCSS(&Schema{}, SCSSOptions{})
	assert.Empty(t, got)
	assert.Empty(t, warnings)

	got, _ = RenderSCSS(nil, SCSSOptions{Layer: Layer("components")})
	assert.Equal(t, "@layer components {\n}", got)
}

func TestWriteSCSS(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	var warnings bytes.Buffer

	result, err := WriteSCSS(alertSchema(), out, SCSSOptions{Warnings: &warnings})
	require.NoError(t, err)

	assert.Equal(t, out+".scss", result.Path)
	assert.Equal(t, 1, result.Blocks)
	assert.Equal(t, 4, result.Rules)
	assert.Empty(t, warnings.String())

	data, err := os.ReadFile(out + ".scss")
	require.NoError(t, err)
	assert.Equal(t, alertSCSS, string(data))
}

func TestWriteSCSSOverwrites(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(out+".scss", []byte("stale"), 0644))

	_, err := WriteSCSS(alertSchema(), out, SCSSOptions{Warnings: &bytes.Buffer{}})
	require.NoError(t, err)

	data, err := os.ReadFile(out + ".scss")
	require.NoError(t, err)
	assert.Equal(t, alertSCSS, string(data))
}

func TestWriteSCSSEmptyLayerWarnsOnce(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	var warnings bytes.Buffer

	result, err := WriteSCSS(alertSchema(), out, SCSSOptions{Layer: Layer(""), Warnings: &warnings})
	require.NoError(t, err)

	assert.Equal(t, EmptyLayerWarning+"\n", warnings.String())
	assert.Equal(t, []string{EmptyLayerWarning}, result.Warnings)

	data, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Equal(t, alertSCSS, string(data))
}

func TestWriteSCSSMissingDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "out")

	result, err := WriteSCSS(alertSchema(), out, SCSSOptions{Warnings: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "write "+out+".scss")
}
