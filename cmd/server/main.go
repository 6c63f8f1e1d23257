package main

import (
	"context"
	"os"

	"github.com/templui/taskboard/internal/server"
)

func main() {
	err := server.Start(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
