package main

import (
	"os"
	exit "os"
)

func helper() {
	os.Exit(2)
}

func main() {
	helper()
	defer os.Exit(0) // want "direct os.Exit call in main"
	exit.Exit(1)     // want "direct os.Exit call in main"
	os.Exit(1)       // want "direct os.Exit call in main"
}
