// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modulemap_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overlaygen/overlaygen/internal/modulemap"
)

func TestDescriptor(t *testing.T) {
	expected := "framework module TestFrame {\n" +
		"  umbrella header \"TestFrame.h\"\n" +
		"\n" +
		"  export *\n" +
		"  module * { export * }\n" +
		"}\n"

	descriptor := modulemap.New()
	descriptor.SetFrameworkModuleName("TestFrame")
	descriptor.SetUmbrellaHeader("TestFrame.h")

	assert.Equal(t, expected, string(descriptor.Bytes()))

	var buf bytes.Buffer

	require.NoError(t, descriptor.WriteInto(&buf))
	assert.Equal(t, expected, buf.String())
}

func TestDescriptorFieldsReplaceable(t *testing.T) {
	descriptor := modulemap.New()
	descriptor.SetFrameworkModuleName("First")
	descriptor.SetFrameworkModuleName("Second")
	descriptor.SetUmbrellaHeader("Second.h")

	assert.Contains(t, string(descriptor.Bytes()), "framework module Second {")
}
