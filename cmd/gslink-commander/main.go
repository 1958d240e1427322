package main

import (
	"github.com/groundlink-io/groundlink/cmd/gslink-commander/app"
)

func main() {
	app.NewApp().Run()
}
