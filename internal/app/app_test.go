package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDocExploreApp_Initializers(t *testing.T) {
	app := NewDocExploreApp()
	require.NotNil(t, app, "NewDocExploreApp should not return nil")
}
