// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the game services into a single process
// lifecycle that ends when the player quits or the process is signalled.
package client
