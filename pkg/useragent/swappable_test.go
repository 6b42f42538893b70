package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uaparser/pkg/uaparser/extensions"
	"github.com/dmitrymomot/uaparser/pkg/useragent"
)

func TestSwappable(t *testing.T) {
	t.Parallel()

	plain, err := useragent.NewClassifier()
	require.NoError(t, err)
	withBots, err := useragent.NewClassifier(useragent.WithLayered(extensions.Bots))
	require.NoError(t, err)

	s := useragent.NewSwappable(plain)
	var _ useragent.Parser = s

	ua, err := s.Parse("axios/1.3.5")
	require.NoError(t, err)
	assert.False(t, ua.IsBot())

	prev := s.Swap(withBots)
	assert.Same(t, plain, prev)
	assert.Same(t, withBots, s.Load())

	ua, err = s.Parse("axios/1.3.5")
	require.NoError(t, err)
	assert.True(t, ua.IsBot())
	assert.Equal(t, len(withBots.Rules()), len(s.Rules()))
}
