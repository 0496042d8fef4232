package deedtpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrInt(i int) *int { return &i }

// --------------------- SortParties ---------------------
func TestSortParties_ByOrderThenID(t *testing.T) {
	parties := []Party{
		{ID: 3, Name: "Citra", Order: ptrInt(2)},
		{ID: 1, Name: "Budi", Order: ptrInt(1)},
		{ID: 2, Name: "Ani", Order: ptrInt(2)},
	}

	sorted := SortParties(parties)

	assert.Equal(t, uint(1), sorted[0].ID)
	assert.Equal(t, uint(2), sorted[1].ID)
	assert.Equal(t, uint(3), sorted[2].ID)
}

func TestSortParties_MissingOrderSortsLast(t *testing.T) {
	parties := []Party{
		{ID: 1, Name: "Tanpa Urutan"},
		{ID: 2, Name: "Kedua", Order: ptrInt(2)},
		{ID: 3, Name: "Pertama", Order: ptrInt(1)},
	}

	sorted := SortParties(parties)

	assert.Equal(t, "Pertama", sorted[0].Name)
	assert.Equal(t, "Kedua", sorted[1].Name)
	assert.Equal(t, "Tanpa Urutan", sorted[2].Name)
}

func TestSortParties_DoesNotMutateInput(t *testing.T) {
	parties := []Party{
		{ID: 2, Order: ptrInt(2)},
		{ID: 1, Order: ptrInt(1)},
	}

	_ = SortParties(parties)

	assert.Equal(t, uint(2), parties[0].ID)
}

// --------------------- BuildTokens ---------------------
func TestBuildTokens_OneIndexedKeys(t *testing.T) {
	parties := []Party{
		{ID: 2, Name: "Budi", Email: "budi@test.com", Order: ptrInt(2)},
		{ID: 1, Name: "Ani", Email: "ani@test.com", Order: ptrInt(1)},
	}

	tokens := BuildTokens(parties, nil)

	assert.Equal(t, "Ani", tokens["penghadap1_name"])
	assert.Equal(t, "ani@test.com", tokens["penghadap1_email"])
	assert.Equal(t, "Budi", tokens["penghadap2_name"])
	assert.Equal(t, "budi@test.com", tokens["penghadap2_email"])
}

func TestBuildTokens_EmptyValuesBecomeDash(t *testing.T) {
	parties := []Party{{ID: 1, Name: "", Email: ""}}

	tokens := BuildTokens(parties, map[string]string{"notaris_name": ""})

	assert.Equal(t, "-", tokens["penghadap1_name"])
	assert.Equal(t, "-", tokens["penghadap1_email"])
	assert.Equal(t, "-", tokens["notaris_name"])
}

func TestBuildTokens_ExtraOverridesParty(t *testing.T) {
	parties := []Party{{ID: 1, Name: "Ani"}}

	tokens := BuildTokens(parties, map[string]string{"penghadap1_name": "Override"})

	assert.Equal(t, "Override", tokens["penghadap1_name"])
}

// --------------------- ReplaceTokens ---------------------
func TestReplaceTokens_BothBraceForms(t *testing.T) {
	tokens := map[string]string{"name": "Alice"}

	out := ReplaceTokens("Hello {{name}} and {name}", tokens)

	assert.Equal(t, "Hello Alice and Alice", out)
}

func TestReplaceTokens_UnknownTokensLeftVerbatim(t *testing.T) {
	tokens := map[string]string{"name": "Alice"}

	out := ReplaceTokens("Hello {{name}} and {other}", tokens)

	assert.Equal(t, "Hello Alice and {other}", out)
}

func TestReplaceTokens_EmptyTemplate(t *testing.T) {
	out := ReplaceTokens("", map[string]string{"name": "Alice"})
	assert.Equal(t, "", out)
}
