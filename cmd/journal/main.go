package main

import (
	"context"
	"fmt"
	"os"

	"github.com/millersjournal/journal/internal/app"
	"github.com/millersjournal/journal/internal/cli"
)

func main() {
	err := cli.New(app.Options{}).ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
