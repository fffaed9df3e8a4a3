package main

import (
	"os"

	"github.com/Snider/Quotebox/cmd"
	"github.com/Snider/Quotebox/pkg/logger"
)

var osExit = os.Exit

func main() {
	Main()
}
func Main() {
	log := logger.New(false)
	if err := cmd.Execute(log); err != nil {
		log.Error("fatal error", "err", err)
		osExit(1)
	}
}
