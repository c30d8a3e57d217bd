// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package bundle packs the real files referenced by an overlay into a
// CPIO archive laid out by virtual path, so the overlay document and
// its backing files can be shipped as one artifact.
package bundle
