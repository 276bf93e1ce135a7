package main

import (
	_ "embed"

	"github.com/smalllvcommm/Software-System-Analysis-and-Design/cmd"
)

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(c)
}
