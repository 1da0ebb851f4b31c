package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/trs-1342/rss-hattab/app/auth"
	"github.com/trs-1342/rss-hattab/app/config"
	"github.com/trs-1342/rss-hattab/app/routes"
	"github.com/trs-1342/rss-hattab/app/services"
	"github.com/trs-1342/rss-hattab/app/store"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("rss-hattab version %s\n", cliVersion)
	case "hash":
		hashPassword()
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: rss-hattab <command> [options]
Commands:
  help                 Display this help message.
  version              Show version information.
  hash <password>      Print the bcrypt hash to put in config.json as ADMIN_PASS_HASH.
  serve [config.json]  Run the blog server (default config path: server/config.json).
`
	fmt.Println(helpText)
}

// hashPassword prints a bcrypt hash for the given password so the operator
// can fill in ADMIN_PASS_HASH without extra tooling.
func hashPassword() {
	if len(os.Args) < 3 {
		fmt.Println("Error: password argument is required for hash command")
		os.Exit(1)
	}
	hash, err := auth.HashPassword(os.Args[2])
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Println(hash)
}

// serve loads the configuration, opens the session database and runs the
// HTTP server until it fails.
func serve() {
	cfgPath := "server/config.json"
	if len(os.Args) > 2 {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config.json yok ya da bozuk: %v", err)
	}

	sessions, err := auth.NewSessionStore(cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("Failed to open session DB: %v", err)
	}

	postStore := store.NewFileStore(cfg.DataPath)
	postService := services.NewPostService(postStore, cfg.AdminUser)

	router := routes.SetupRoutes(cfg, postService, sessions)

	log.Printf("http://localhost:%d", cfg.Port)
	serveErr := routes.StartServer(cfg.Addr(), router)

	// log.Fatalf skips deferred calls, so close the session DB first or its
	// lock file lingers.
	if err := sessions.Close(); err != nil {
		log.Printf("Failed to close session DB: %v", err)
	}
	if serveErr != nil {
		log.Fatalf("Server error: %v", serveErr)
	}
}
