// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
		assert      func(t *testing.T, flags *flags)
	}{
		{
			name: "no args",
			args: []string{"overlaygen"},
			assert: func(t *testing.T, flags *flags) {
				assert.Empty(t, flags.Mappings)
				assert.Empty(t, flags.OutputPath)
			},
		},
		{
			name: "mappings",
			args: []string{
				"overlaygen",
				"/path/virtual/foo.h=/real/foo.h",
				"/path/virtual/bar.h=/real/bar.h",
			},
			assert: func(t *testing.T, flags *flags) {
				assert.Equal(t, []mappingArg{
					{virtual: "/path/virtual/foo.h", real: "/real/foo.h"},
					{virtual: "/path/virtual/bar.h", real: "/real/bar.h"},
				}, flags.Mappings)
			},
		},
		{
			name: "all flags",
			args: []string{
				"overlaygen",
				"-output", "overlay.json",
				"-bundle", "overlay.cpio",
				"-case-insensitive",
				"-check",
				"-debug",
				"/path/virtual/foo.h=/real/foo.h",
			},
			assert: func(t *testing.T, flags *flags) {
				assert.Equal(t, "overlay.json", flags.OutputPath)
				assert.Equal(t, "overlay.cpio", flags.BundlePath)
				assert.True(t, flags.CaseInsensitive)
				assert.True(t, flags.Check)
				assert.True(t, flags.Debug)
				assert.Equal(t, slog.LevelDebug, flags.logLevel())
			},
		},
		{
			name: "modulemap",
			args: []string{
				"overlaygen",
				"-modulemap",
				"-framework", "TestFrame",
				"-umbrella", "TestFrame.h",
			},
			assert: func(t *testing.T, flags *flags) {
				assert.True(t, flags.ModuleMap)
				assert.Equal(t, "TestFrame", flags.FrameworkName)
				assert.Equal(t, "TestFrame.h", flags.UmbrellaHeader)
			},
		},
		{
			name:        "malformed mapping",
			args:        []string{"overlaygen", "/path/virtual/foo.h"},
			expectedErr: ErrMappingMalformed,
		},
		{
			name:        "empty mapping sides",
			args:        []string{"overlaygen", "=/real/foo.h"},
			expectedErr: ErrMappingMalformed,
		},
		{
			name:        "modulemap without fields",
			args:        []string{"overlaygen", "-modulemap"},
			expectedErr: ErrModuleMapFieldsMissing,
		},
		{
			name:        "framework without modulemap",
			args:        []string{"overlaygen", "-framework", "TestFrame"},
			expectedErr: ErrModuleMapOnly,
		},
		{
			name:        "unknown flag",
			args:        []string{"overlaygen", "-nonsense"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "help",
			args:        []string{"overlaygen", "-help"},
			expectedErr: ErrHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseArgs(tt.args, io.Discard)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			tt.assert(t, flags)
		})
	}
}

func TestFlagsLogLevel(t *testing.T) {
	flags := &flags{}
	assert.Equal(t, slog.LevelWarn, flags.logLevel())

	flags.Debug = true
	assert.Equal(t, slog.LevelDebug, flags.logLevel())
}
