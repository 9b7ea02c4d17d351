package main

import "backoffice-api/app"

func main() {
	app.Run()
}
