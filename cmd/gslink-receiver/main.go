package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/groundlink-io/groundlink/cmd/gslink-receiver/app"
)

func main() {
	app.NewApp().Run()
}
