package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"payment-rails/config"
	"payment-rails/internal/service"
)

// mint issues a bearer token for an account, signed with the deployment's
// JWT secret. Tokens are minted out-of-band by an operator holding the
// secret; the API itself has no credential store to exchange for one.
func main() {
	account := flag.String("account", "", "account to mint a token for")
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	if *account == "" {
		fmt.Fprintln(os.Stderr, "usage: mint -account <account> [-config <path>]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "auth.jwt_secret is not configured")
		os.Exit(1)
	}

	tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.JWTIssuer)
	token, expiresAt, err := tokenSvc.Generate(*account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to mint token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "account=%s expires=%s\n", *account, expiresAt.UTC().Format(time.RFC3339))
}
