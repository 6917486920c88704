package main

import (
	"log"

	"github.com/apakhome20-stack/efebem/config"
	"github.com/apakhome20-stack/efebem/routes"
)

func main() {
	db := config.InitDB()
	r := routes.SetupRouter(db)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
