// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package overlay builds virtual file overlay descriptors. An [Overlay]
// collects virtual-to-real file mappings and serializes them into the
// JSON overlay document consumed by compiler virtual file system
// layers.
package overlay
