package main

import (
	"courtside.dev/backend/cmd/app"
)

func main() {
	app.Run()
}
