package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uaparser/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	attr := logger.UserAgent("curl/8.0")
	require.Equal(t, "user_agent", attr.Key)
	assert.Equal(t, "curl/8.0", attr.Value.String())

	attr = logger.Bundles("bots", "vehicles")
	require.Equal(t, "bundles", attr.Key)
	assert.Equal(t, "bots,vehicles", attr.Value.String())
	assert.True(t, logger.Bundles().Equal(slog.Attr{}))

	attr = logger.RuleFile("rules.yaml")
	require.Equal(t, "rule_file", attr.Key)
	assert.True(t, logger.RuleFile("").Equal(slog.Attr{}))

	attr = logger.Rules(12)
	require.Equal(t, "rules", attr.Key)
	assert.Equal(t, int64(12), attr.Value.Int64())

	attr = logger.Component("classifier")
	assert.Equal(t, "component", attr.Key)
}
