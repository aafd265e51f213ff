package bemgen

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue(t *testing.T) {
	want := []ClassInfo{
		{Class: "alert", Block: "alert"},
		{Class: "alert--success", Block: "alert", Modifier: "success"},
		{Class: "alert__icon", Block: "alert", Element: "icon"},
		{Class: "alert__icon--large", Block: "alert", Element: "icon", Modifier: "large"},
	}

	if diff := cmp.Diff(want, Catalogue(alertSchema())); diff != "" {
		t.Errorf("Catalogue mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, Catalogue(nil))
}

func TestClassNamesMatchStrictGenerator(t *testing.T) {
	schema := collapsableSchema()
	gen, err := NewGenerator(schema, Options{Validation: ValidationStrict})
	require.NoError(t, err)

	// Every catalogued class is a token the strict generator produces.
	for _, info := range Catalogue(schema) {
		var mods Flags
		if info.Modifier != "" {
			mods = Flags{info.Modifier: true}
		}

		var got string
		if info.Element != "" {
			got, err = gen.Element(info.Block, info.Element, mods)
		} else {
			got, err = gen.Block(info.Block, mods)
		}
		require.NoError(t, err, info.Class)
		assert.Contains(t, " "+got+" ", " "+info.Class+" ")
	}

	assert.Len(t, ClassNames(schema), 14)
}

func TestWriteCatalogue(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCatalogue(&buf, alertSchema(), CatalogueText))
		assert.Equal(t, "alert\nalert--success\nalert__icon\nalert__icon--large\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCatalogue(&buf, alertSchema(), CatalogueJSON))

		var got []ClassInfo
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, Catalogue(alertSchema()), got)
		assert.NotContains(t, buf.String(), `"element": ""`)
	})

	t.Run("json empty schema", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCatalogue(&buf, &Schema{}, CatalogueJSON))
		assert.Equal(t, "[]\n", buf.String())
	})
}
