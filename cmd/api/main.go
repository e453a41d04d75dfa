package main

import (
	"go.uber.org/fx"

	appfx "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
