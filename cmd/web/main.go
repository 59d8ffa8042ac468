package main

import "legalvault_backend/internal/app"

func main() {
	app.Run()
}
