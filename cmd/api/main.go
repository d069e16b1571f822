package main

import (
	_ "github.com/rafacrt/studio-sub000/docs"
	"github.com/rafacrt/studio-sub000/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Studio OS Service API
// @version         1.0
// @description     Ordem de Serviço board (kanban + numbering + reports) backed by SQLite or DynamoDB.
// @termsOfService  http://swagger.io/terms/

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
