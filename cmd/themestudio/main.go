// themestudio - a theme builder for MUI-style component libraries
//
// themestudio composes design-style presets, brand tokens and theme plugins
// into complete themes and exports them as code for frontend projects.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/themestudio/internal/cli"
)

func main() {
	cli.Execute()
}
