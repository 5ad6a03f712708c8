package main

import "house_rent_web/internal/app"

func main() {
	app.Run()
}
