package redis

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/sky_take_out/internal/apperrors"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dishCache struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

func newTemplate(t *testing.T) (*Template, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewTemplate(client), mr
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), Config{Addr: addr})
	assert.ErrorContains(t, err, "redis ping failed")
}

func TestTemplate_GetSet(t *testing.T) {
	tpl, mr := newTemplate(t)
	ctx := context.Background()

	require.NoError(t, tpl.Set(ctx, "SHOP_STATUS", 1, 0))
	got, err := tpl.Get(ctx, "SHOP_STATUS")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Zero(t, mr.TTL("SHOP_STATUS"))

	require.NoError(t, tpl.Set(ctx, "captcha", "x", time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("captcha"))
}

func TestTemplate_GetMissing(t *testing.T) {
	tpl, _ := newTemplate(t)

	_, err := tpl.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTemplate_Delete(t *testing.T) {
	tpl, mr := newTemplate(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("dish_1", "a"))
	require.NoError(t, mr.Set("dish_2", "b"))

	require.NoError(t, tpl.Delete(ctx, "dish_1", "dish_2", "dish_3"))
	assert.False(t, mr.Exists("dish_1"))
	assert.False(t, mr.Exists("dish_2"))
	assert.NoError(t, tpl.Delete(ctx))
}

func TestTemplate_JSON(t *testing.T) {
	tpl, mr := newTemplate(t)
	ctx := context.Background()

	in := []dishCache{{ID: 1, Name: "Mapo Tofu", Price: "18.00"}}
	require.NoError(t, tpl.SetJSON(ctx, "dish_11", in, 0))

	var out []dishCache
	require.NoError(t, tpl.GetJSON(ctx, "dish_11", &out))
	assert.Equal(t, in, out)

	require.NoError(t, mr.Set("broken", "{"))
	assert.ErrorContains(t, tpl.GetJSON(ctx, "broken", &out), "decode redis key")
	assert.ErrorIs(t, tpl.GetJSON(ctx, "missing", &out), apperrors.ErrNotFound)
}
