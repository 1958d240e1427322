package main

import (
	"github.com/groundlink-io/groundlink/cmd/gslink-replay/app"
)

func main() {
	app.NewApp().Run()
}
