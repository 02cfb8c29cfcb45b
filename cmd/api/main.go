package main

import (
	"os"

	"github.com/yigit/careerhub/cmd/api/commands"
)

// @title Career Services Registration API
// @version 1.0
// @description Account registration for the career services application.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey ServiceRoleAuth
// @in header
// @name Authorization
// @description Service role token, as printed by careers token. Format: Bearer {token}

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
