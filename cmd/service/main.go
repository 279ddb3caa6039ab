// @title        Atlas API
// @version      1.0
// @description  Multi-tenant inventory: users own items; categories and tags are shared.
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.oauth2.password OAuth2Password
// @tokenUrl /auth/login
package main

import (
	"log"
	"os"
)

var exitFunc = os.Exit

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
