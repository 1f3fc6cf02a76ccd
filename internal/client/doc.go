// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the clipboard client runtime.
//
// [App] loads the persisted state, starts the clipboard watcher and the
// sync scheduler and then hands the terminal to the UI, or waits for a
// signal when running headless. [NewCLI] puts one-shot commands (sync
// control, key transfer, export) in front of it.
package client
