package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("default level is info", func(t *testing.T) {
		t.Setenv("NEWSDESK_DEBUG", "")
		Init()
		require.Equal(t, logrus.InfoLevel, Log.GetLevel())
		require.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)
	})

	t.Run("debug level from env", func(t *testing.T) {
		t.Setenv("NEWSDESK_DEBUG", "true")
		Init()
		require.Equal(t, logrus.DebugLevel, Log.GetLevel())
	})
}
