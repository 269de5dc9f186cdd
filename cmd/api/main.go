package main

import (
	"log"
	_ "mercado_audiovisual/docs"
	"mercado_audiovisual/internal/adapter/http/routes"
	"mercado_audiovisual/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Mercado Audiovisual API
// @version         1.0
// @description     Recruitment and contact-request workflows for the regional film-production marketplace.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
