package main

import (
	_ "paymob_service/docs"
	"paymob_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Paymob Acceptance Service API
// @version         1.0
// @description     HTTP front for the Paymob acceptance gateway client (orders, payment keys, card charges, captures).

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
