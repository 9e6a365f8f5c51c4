package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimranazman/mymandarin/pkg/models"
)

func TestNewPreservesOrder(t *testing.T) {
	c := New([]models.Word{
		{Pinyin: "chī", Meaning: "to eat", Category: "Food"},
		{Pinyin: "yī", Meaning: "one", Category: "Numbers"},
		{Pinyin: "hē", Meaning: "to drink", Category: "Food"},
	})

	assert.Equal(t, []string{"Food", "Numbers"}, c.Categories())

	words := c.AllWords()
	require.Len(t, words, 3)
	assert.Equal(t, "chī", words[0].Pinyin)
	assert.Equal(t, "hē", words[1].Pinyin)
	assert.Equal(t, "yī", words[2].Pinyin)
}

func TestLookup(t *testing.T) {
	c := New([]models.Word{{Pinyin: "shuǐ", Meaning: "water", Category: "Food"}})

	w, ok := c.Lookup("shuǐ")
	require.True(t, ok)
	assert.Equal(t, "water", w.Meaning)

	_, ok = c.Lookup("huǒ")
	assert.False(t, ok)
}

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()

	assert.Greater(t, c.Len(), 20)
	assert.NotEmpty(t, c.Categories())

	// Pinyin keys are globally unique
	seen := make(map[string]bool)
	for _, w := range c.AllWords() {
		assert.False(t, seen[w.Pinyin], "duplicate pinyin %q", w.Pinyin)
		seen[w.Pinyin] = true
		assert.NotEmpty(t, w.Meaning, "word %q has no meaning", w.Pinyin)
		assert.NotEmpty(t, w.Category, "word %q has no category", w.Pinyin)
	}
}

func TestImportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	csv := "pinyin,hanzi,meaning,notes,components,category\n" +
		"hǎo,好,good,,女 + 子,Basics\n" +
		"chá,茶,tea,,,Food\n" +
		",口,mouth,,,Body\n" + // missing pinyin, skipped
		"hǎo,好,good again,,,Basics\n" // duplicate, skipped
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	cat, result, err := Import(DefaultImportConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalProcessed)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, result.Errors, 2)

	w, ok := cat.Lookup("hǎo")
	require.True(t, ok)
	assert.Equal(t, "好", w.Hanzi)
	assert.Equal(t, "good", w.Meaning)
	assert.Equal(t, []string{"女", "子"}, w.Components)
	assert.Equal(t, "Basics", w.Category)

	assert.Equal(t, []string{"Basics", "Food"}, cat.Categories())
}

func TestImportCSVMissingCategoryDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	csv := "pinyin,hanzi,meaning\nshuǐ,水,water\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	cat, _, err := Import(DefaultImportConfig(path))
	require.NoError(t, err)

	w, ok := cat.Lookup("shuǐ")
	require.True(t, ok)
	assert.Equal(t, "Uncategorized", w.Category)
}

func TestImportMissingFile(t *testing.T) {
	_, _, err := Import(DefaultImportConfig("no-such-file.csv"))
	assert.Error(t, err)
}

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		column string
		want   int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"AB", 27},
		{"a", 0},
		{"1", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, columnToIndex(tt.column), "column %q", tt.column)
	}
}
