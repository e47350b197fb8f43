// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the rmcloud command line.
//
// [App] parses a sub-command, makes sure the session is usable and prints
// results to its output writer. Logging goes to the log file configured for
// the process, never to the command output.
package client
