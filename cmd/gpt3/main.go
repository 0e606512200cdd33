package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, styleWarning.Render(err.Error()))
		os.Exit(1)
	}
}
