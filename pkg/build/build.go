// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

// Package build contains build information for the otelog module.
package build

import (
	_ "embed"
)

//go:embed version.txt
var Version string
