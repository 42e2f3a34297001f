// cmd/viewkit-preview/main.go
package main

import (
	"context"
	"os"

	"github.com/dalemusser/viewkit/app"
	"github.com/dalemusser/viewkit/internal/preview"
)

func main() {
	hooks := app.Hooks{
		Name:         "viewkit-preview",
		BuildHandler: preview.BuildHandler,
	}
	if err := app.Run(context.Background(), hooks); err != nil {
		os.Exit(1)
	}
}
