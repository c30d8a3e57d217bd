// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package modulemap renders framework module map declarations.
package modulemap

import (
	"bytes"
	"fmt"
	"io"
)

// Descriptor accumulates the fields of a framework module declaration.
//
// Create a new instance with [New], set the fields and render the
// declaration with [Descriptor.WriteInto] or [Descriptor.Bytes]. The
// declaration exports all headers and declares a wildcard sub-module
// that exports everything as well.
type Descriptor struct {
	frameworkModuleName string
	umbrellaHeader      string
}

// New creates a new empty [Descriptor].
func New() *Descriptor {
	return &Descriptor{}
}

// SetFrameworkModuleName sets the name of the declared framework
// module.
func (d *Descriptor) SetFrameworkModuleName(name string) {
	d.frameworkModuleName = name
}

// SetUmbrellaHeader sets the umbrella header of the framework module.
func (d *Descriptor) SetUmbrellaHeader(header string) {
	d.umbrellaHeader = header
}

// WriteInto writes the rendered module map declaration to the given
// writer.
func (d *Descriptor) WriteInto(writer io.Writer) error {
	_, err := fmt.Fprintf(writer,
		"framework module %s {\n"+
			"  umbrella header \"%s\"\n"+
			"\n"+
			"  export *\n"+
			"  module * { export * }\n"+
			"}\n",
		d.frameworkModuleName,
		d.umbrellaHeader,
	)
	if err != nil {
		return fmt.Errorf("write module map: %w", err)
	}

	return nil
}

// Bytes returns the rendered module map declaration. The returned
// buffer is owned by the caller.
func (d *Descriptor) Bytes() []byte {
	var buf bytes.Buffer

	// Writing into a bytes.Buffer cannot fail.
	_ = d.WriteInto(&buf)

	return buf.Bytes()
}
