package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-objectmodel/pkg/model"
	"github.com/goliatone/go-objectmodel/pkg/schema"
	"github.com/goliatone/go-objectmodel/pkg/validation"
)

func TestExportScalarFields(t *testing.T) {
	person, err := model.NewType("Person",
		model.WithField("name", model.NewField(
			model.Required(),
			model.WithValidator(validation.Chain(
				validation.NotEmptyString(),
				validation.MaxLen(120),
			)),
		)),
		model.WithField("age", model.NewField(
			model.WithDefault(0),
			model.WithValidator(validation.NonNegative()),
		)),
		model.WithField("nickname", model.NewField(
			model.AllowNull(),
			model.WithValidator(validation.Nullable(validation.OfType[string]())),
		)),
	)
	require.NoError(t, err)

	exported, err := schema.Export(person)
	require.NoError(t, err)

	assert.Equal(t, "Person", exported.Title)
	assert.Equal(t, []string{"object"}, exported.Type.Slice())
	assert.Equal(t, []string{"name"}, exported.Required)

	name := exported.Properties["name"].Value
	require.NotNil(t, name)
	assert.Equal(t, []string{"string"}, name.Type.Slice())
	assert.EqualValues(t, 1, name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.EqualValues(t, 120, *name.MaxLength)

	age := exported.Properties["age"].Value
	require.NotNil(t, age)
	require.NotNil(t, age.Min)
	assert.Equal(t, float64(0), *age.Min)
	assert.Equal(t, 0, age.Default)

	nickname := exported.Properties["nickname"].Value
	require.NotNil(t, nickname)
	assert.True(t, nickname.Nullable)
	assert.Equal(t, []string{"string"}, nickname.Type.Slice())
}

func TestExportEnum(t *testing.T) {
	typ, err := model.NewType("Light",
		model.WithField("color", model.NewField(
			model.WithValidator(validation.In("red", "green", "blue")),
		)),
	)
	require.NoError(t, err)

	exported, err := schema.Export(typ)
	require.NoError(t, err)

	color := exported.Properties["color"].Value
	require.NotNil(t, color)
	assert.Equal(t, []any{"red", "green", "blue"}, color.Enum)
}

func TestExportNestedObjectAndList(t *testing.T) {
	address, err := model.NewType("Address",
		model.WithField("city", model.NewField(model.Required())),
	)
	require.NoError(t, err)

	person, err := model.NewType("Person",
		model.WithField("address", model.NewObjectField(model.TypeOf(address))),
		model.WithField("tags", model.NewListField(model.TypeOf(address))),
	)
	require.NoError(t, err)

	exported, err := schema.Export(person)
	require.NoError(t, err)

	nested := exported.Properties["address"].Value
	require.NotNil(t, nested)
	assert.Equal(t, "Address", nested.Title)
	assert.Contains(t, nested.Properties, "city")

	tags := exported.Properties["tags"].Value
	require.NotNil(t, tags)
	assert.Equal(t, []string{"array"}, tags.Type.Slice())
	require.NotNil(t, tags.Items)
	assert.Equal(t, "Address", tags.Items.Value.Title)
}

func TestExportSelfReferenceEmitsComponentRef(t *testing.T) {
	reg := model.NewRegistry()
	user, err := model.NewType("User",
		model.WithField("name", model.NewField(model.Required())),
		model.WithField("friends", model.NewListField(model.TypeNamed("User", reg))),
		model.WithRegistry(reg),
	)
	require.NoError(t, err)

	exported, err := schema.Export(user)
	require.NoError(t, err)

	friends := exported.Properties["friends"].Value
	require.NotNil(t, friends)
	require.NotNil(t, friends.Items)
	assert.Equal(t, "#/components/schemas/User", friends.Items.Ref)
}

func TestExportUnresolvedReferenceFallsBackToRef(t *testing.T) {
	reg := model.NewRegistry()
	box, err := model.NewType("Box",
		model.WithField("items", model.NewListField(model.TypeNamed("Later", reg))),
	)
	require.NoError(t, err)

	exported, err := schema.Export(box)
	require.NoError(t, err)

	items := exported.Properties["items"].Value
	require.NotNil(t, items)
	assert.Equal(t, "#/components/schemas/Later", items.Items.Ref)
}

func TestExportDictField(t *testing.T) {
	item, err := model.NewType("Item",
		model.WithField("label", model.NewField()),
	)
	require.NoError(t, err)
	shelf, err := model.NewType("Shelf",
		model.WithField("slots", model.NewDictField(model.TypeOf(item))),
	)
	require.NoError(t, err)

	exported, err := schema.Export(shelf)
	require.NoError(t, err)

	slots := exported.Properties["slots"].Value
	require.NotNil(t, slots)
	assert.Equal(t, []string{"object"}, slots.Type.Slice())
	require.NotNil(t, slots.AdditionalProperties.Schema)
	assert.Equal(t, "Item", slots.AdditionalProperties.Schema.Value.Title)
}

func TestExportProxyFieldIsReadOnly(t *testing.T) {
	typ, err := model.NewType("A",
		model.WithField("name", model.NewField()),
		model.WithField("display", model.NewProxyField("name")),
	)
	require.NoError(t, err)

	exported, err := schema.Export(typ)
	require.NoError(t, err)

	display := exported.Properties["display"].Value
	require.NotNil(t, display)
	assert.True(t, display.ReadOnly)
}

func TestComponents(t *testing.T) {
	a, err := model.NewType("A", model.WithField("x", model.NewField()))
	require.NoError(t, err)
	b, err := model.NewType("B", model.WithField("y", model.NewField()))
	require.NoError(t, err)

	components, err := schema.Components(a, b)
	require.NoError(t, err)
	assert.Len(t, components, 2)
	assert.Contains(t, components, "A")
	assert.Contains(t, components, "B")

	_, err = schema.Components(a, a)
	require.Error(t, err)
}
