// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/bluehathi/leadsetu-sub001/cmd"

func main() {
	cmd.Execute()
}
