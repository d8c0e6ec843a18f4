package main

import (
	"github.com/mj1618/winlist/cmd"

	_ "github.com/mj1618/winlist/internal/platform/darwin"
	_ "github.com/mj1618/winlist/internal/platform/linux"
	_ "github.com/mj1618/winlist/internal/platform/windows"
)

func main() {
	cmd.Execute()
}
