// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bot wires the feeds, the notification dispatcher and the
// interaction endpoint into a single process lifecycle.
package bot
