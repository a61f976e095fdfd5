package main

import "github.com/gmaps-business-provider/internal/cli"

func main() {
	cli.Execute()
}
