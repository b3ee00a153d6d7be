package main

import (
	_ "pma_workorders/docs"
	"pma_workorders/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PMA Work Order API
// @version         1.0
// @description     Digital PMA work-order forms for HVAC preventive-maintenance visits, with PDF export.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
