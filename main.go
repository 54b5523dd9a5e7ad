package main

import "github.com/saadjs/kcal-tui/cmd/kcal"

func main() {
	kcal.Execute()
}
