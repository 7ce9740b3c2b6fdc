package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/contentview/internal/cli"
	"github.com/rshade/contentview/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.Equal(t, "contentview", root.Use)
		assert.Equal(t, version.GetVersion(), root.Version)
	})
}

func TestExtractExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error returns 0", err: nil, want: 0},
		{name: "no results", err: &cli.ExitError{Code: cli.ExitCodeNoResults, Reason: "no rows"}, want: 3},
		{name: "custom code", err: &cli.ExitError{Code: 42, Reason: "other"}, want: 42},
		{
			name: "wrapped exit error",
			err:  fmt.Errorf("list: %w", &cli.ExitError{Code: 3, Reason: "wrapped"}),
			want: 3,
		},
		{
			name: "joined exit error",
			err:  errors.Join(errors.New("outer"), &cli.ExitError{Code: 5, Reason: "joined"}),
			want: 5,
		},
		{name: "generic error", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractExitCode(tt.err))
		})
	}
}
