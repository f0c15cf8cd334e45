package main

import "github.com/clauscomputing/abortguard/internal/cmd"

func main() {
	cmd.Execute()
}
