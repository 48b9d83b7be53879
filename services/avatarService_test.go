package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarService_Generate(t *testing.T) {
	svc := NewAvatarService()

	avatar, err := svc.Generate(context.Background(), "a")
	require.NoError(t, err)

	assert.Equal(t, "a", avatar.Input)
	assert.Equal(t, uint32(97), avatar.Digest)
	assert.Equal(t, DerivePalette(97), avatar.Palette)
	require.NotNil(t, avatar.Grid)
	assert.Equal(t, *DeriveGrid("a"), *avatar.Grid)
	assert.Equal(t, 1, avatar.Attempts)
	assert.True(t, avatar.InBand)
	assert.False(t, avatar.Placeholder())
}

func TestAvatarService_GenerateEmpty(t *testing.T) {
	avatar, err := NewAvatarService().Generate(context.Background(), "")
	require.NoError(t, err)

	assert.True(t, avatar.Placeholder())
	assert.Nil(t, avatar.Grid)
	assert.Equal(t, uint32(0), avatar.Digest)
	assert.Equal(t, DerivePalette(0), avatar.Palette)
	assert.Equal(t, 0, avatar.Attempts)
}

func TestAvatarService_RecomputesEachCall(t *testing.T) {
	svc := NewAvatarService()
	ctx := context.Background()

	first, err := svc.Generate(ctx, "hello world")
	require.NoError(t, err)
	first.Grid[0][0] = CellEmpty

	second, err := svc.Generate(ctx, "hello world")
	require.NoError(t, err)
	assert.Equal(t, CellPrimary, second.Grid[0][0])
}

func TestAvatarService_InputTooLong(t *testing.T) {
	svc := NewAvatarService(WithMaxInputLength(4))
	ctx := context.Background()

	_, err := svc.Generate(ctx, "12345")
	assert.ErrorIs(t, err, ErrInputTooLong)

	_, err = svc.Generate(ctx, "ðððð")
	assert.NoError(t, err)

	unlimited := NewAvatarService(WithMaxInputLength(0))
	_, err = unlimited.Generate(ctx, strings.Repeat("x", 10*DefaultMaxInputLength))
	assert.NoError(t, err)
}

func TestAvatarService_CustomRules(t *testing.T) {
	svc := NewAvatarService(WithGridRules(GridRules{MaxAttempts: 5, MinFill: 90, MaxFill: 100}))

	avatar, err := svc.Generate(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, avatar.InBand)
	assert.Equal(t, 5, avatar.Attempts)
	assert.True(t, avatar.Grid.Symmetric())
}

func TestAvatarService_Random(t *testing.T) {
	zeros := bytes.NewReader(make([]byte, 16))
	svc := NewAvatarService(WithIdentifierGenerator(NewIdentifierGenerator(zeros)))

	avatar, err := svc.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-4000-8000-000000000000", avatar.Input)
	assert.NotNil(t, avatar.Grid)
}
