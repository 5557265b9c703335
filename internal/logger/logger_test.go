package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		json, debug bool
	}{{false, false}, {true, false}, {false, true}, {true, true}} {
		l, err := New(tc.json, tc.debug)
		require.NoError(t, err)
		assert.Equal(t, tc.debug, l.Core().Enabled(zapcore.DebugLevel))
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "", Preview("text", 0))
	assert.Equal(t, "short", Preview("  short  ", 10))
	assert.Equal(t, "résu...", Preview("résumé text", 4))
}

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  provider  ", Value: "  gemini  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	require.Len(t, fields, 1)
	assert.Equal(t, "provider", fields[0].Key)
	assert.Equal(t, "gemini", fields[0].String)
	assert.Empty(t, StringFields())
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithFields(zap.New(core), zap.String("foo", "bar")).Info("test log")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bar", entries[0].ContextMap()["foo"])

	assert.NotPanics(t, func() {
		WithFields(nil, zap.String("baz", "qux")).Info("another log")
	})
}

func TestWithEmbedder(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithEmbedder(zap.New(core), "hashing", "").Info("embedded")

	ctx := observed.All()[0].ContextMap()
	assert.Equal(t, "hashing", ctx[FieldProvider])
	assert.NotContains(t, ctx, FieldModel)
}
