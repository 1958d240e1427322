package main

import (
	"github.com/groundlink-io/groundlink/cmd/gslink-simulator/app"
)

func main() {
	app.NewApp().Run()
}
