// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless client application runtime.
//
// It wires authentication, the diet dashboard orchestrator, and background
// health metric synchronization into a single process lifecycle.
package client
