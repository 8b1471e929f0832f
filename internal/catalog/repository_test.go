package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CRUD(t *testing.T) {
	repo := NewInMemoryRepository(DefaultPlans())

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "la-luxe-14x14", all[0].ID)

	// List hands out copies
	all[0].Specs[0].Value = "1x1"
	again, _ := repo.GetByID("la-luxe-14x14")
	assert.Equal(t, "14x14 ft", again.SpecValue("size"))

	_, err = repo.Create(Product{ID: "la-luxe-14x14"})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = repo.Create(Product{ID: "tiny", Title: "Tiny", Slug: "tiny"})
	require.NoError(t, err)

	updated, err := repo.Update("tiny", Product{Title: "Tiny 2", Slug: "tiny"})
	require.NoError(t, err)
	assert.Equal(t, "tiny", updated.ID)

	require.NoError(t, repo.Delete("tiny"))
	assert.ErrorIs(t, repo.Delete("tiny"), ErrNotFound)
	_, err = repo.Update("tiny", Product{})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Reset(nil))
	all, _ = repo.List()
	assert.Empty(t, all)
}

func TestProductSpecLookup(t *testing.T) {
	p := Product{Specs: []Spec{{"SIZE", "10x10"}, {"Style", "Modern"}, {"style", "Classic"}}}

	assert.Equal(t, "10x10", p.SpecValue(LabelSize))
	assert.Equal(t, "Modern", p.SpecValue(LabelStyle))
	assert.Equal(t, "", p.SpecValue(LabelRoof))

	// lower-casing only: the long s is not folded to s
	longS := Product{Specs: []Spec{{"ſize", "9x9"}, {"Size", "14x14 ft"}}}
	assert.Equal(t, "14x14 ft", longS.SpecValue(LabelSize))
	_, ok := Product{Specs: []Spec{{"ſize", "9x9"}}}.Spec(LabelSize)
	assert.False(t, ok)
}

func TestDecode(t *testing.T) {
	plans, err := Decode([]byte(`
plans:
  - title: Backyard Basic
    slug: backyard-basic
    product_url: https://example.com/basic
    specs:
      - {label: Size, value: 10 by 12}
      - {label: Style, value: Farmhouse}
  - id: custom
    title: Custom
    slug: custom-slug
`))
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "backyard-basic", plans[0].ID)
	assert.Equal(t, "https://example.com/basic", plans[0].ProductURL)
	assert.Equal(t, "10 by 12", plans[0].SpecValue("Size"))
	assert.Equal(t, "custom", plans[1].ID)

	_, err = Decode([]byte("plans: [oops"))
	assert.Error(t, err)
}
