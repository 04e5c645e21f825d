package main

import (
	"github.com/dogeorg/wifictl/cmd/wifictl/cmd"
)

func main() {
	cmd.Execute()
}
