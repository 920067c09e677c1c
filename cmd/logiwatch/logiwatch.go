package main

import "github.com/Egor213/LogiWatch/internal/app"

func main() {
	app.Run()
}
