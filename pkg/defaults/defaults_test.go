package defaults_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-objectmodel/pkg/defaults"
	"github.com/goliatone/go-objectmodel/pkg/model"
)

func TestUUID(t *testing.T) {
	factory := defaults.UUID()

	first, ok := factory().(string)
	require.True(t, ok)
	_, err := uuid.Parse(first)
	require.NoError(t, err)

	second := factory().(string)
	assert.NotEqual(t, first, second)
}

func TestShortID(t *testing.T) {
	id, ok := defaults.ShortID(8)().(string)
	require.True(t, ok)
	assert.Len(t, id, 8)

	full := defaults.ShortID(0)().(string)
	assert.Len(t, full, 36)
}

func TestUnixNow(t *testing.T) {
	before := float64(time.Now().UnixNano()) / float64(time.Second)
	got, ok := defaults.UnixNow()().(float64)
	require.True(t, ok)
	after := float64(time.Now().UnixNano()) / float64(time.Second)

	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}

func TestNowRFC3339(t *testing.T) {
	got, ok := defaults.NowRFC3339()().(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339Nano, got)
	require.NoError(t, err)
}

func TestEmptyList(t *testing.T) {
	got, ok := defaults.EmptyList()().([]*model.Instance)
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestFactoriesAsFieldDefaults(t *testing.T) {
	typ, err := model.NewType("Entity",
		model.WithField("id", model.NewField(model.Required(), model.WithDefaultFactory(defaults.ShortID(8)))),
		model.WithField("created", model.NewField(model.WithDefaultFactory(defaults.UnixNow()))),
	)
	require.NoError(t, err)

	inst, err := typ.New(nil)
	require.NoError(t, err)

	id, err := inst.Get("id")
	require.NoError(t, err)
	assert.Len(t, id, 8)

	memoized, err := inst.Get("id")
	require.NoError(t, err)
	assert.Equal(t, id, memoized)
}
