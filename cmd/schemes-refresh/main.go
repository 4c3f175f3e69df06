package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/schemes-dashboard/schemes-refresh/commands"
)

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Printf("\nError parsing command line: unexpected arguments %v\n\n", flag.Args())
		os.Exit(1)
	}

	ctx := context.Background()

	if err := commands.RefreshCmd.Execute(ctx, &options); err != nil {
		log.Fatalf("%-5s %v", "ERROR", err)
	}
}
