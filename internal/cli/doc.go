// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the helmstream command line: argument parsing,
// the one-shot ask command, the interactive chat REPL, and the status
// and config commands. The full-screen dashboard itself lives in the
// ui packages; this package only decides which surface to launch.
package cli
