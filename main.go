package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/olimci/fuhen/cmd"
)

func main() {
	if err := cmd.Execute(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
