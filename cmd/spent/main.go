package main

import (
	"context"
	"os"

	"github.com/ardnew/spent/cli"
	"github.com/ardnew/spent/log"
)

func main() {
	if err := cli.Run(context.Background(), os.Exit, os.Args[1:]...); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
