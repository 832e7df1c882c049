package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// A missing .env file is fine; CV2PDF_* may come from the real environment.
	_ = godotenv.Load()

	os.Exit(runMain(os.Args, DefaultEnv()))
}
