package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/appcontext"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Bootstrap(ctx); err != nil {
		log.Printf("bootstrap failed: %v", err)
	}

	printSummary(app)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Printf("Application shutdown error: %v", err)
		os.Exit(1)
	}
	log.Printf("closed completed")
}

func printSummary(app *appcontext.ApplicationContext) {
	switch app.AuthService.Status() {
	case service.AuthStatusAuthenticated:
		user := app.AuthService.CurrentUser()
		fmt.Printf("signed in as %s <%s>\n", user.Name, user.Email)
	default:
		fmt.Println("not signed in")
	}

	categories := app.CatalogService.Categories()
	products := app.CatalogService.Products()
	fmt.Printf("%d categories, %d products loaded\n", len(categories), len(products))

	for _, p := range products {
		stock := "in stock"
		if !p.InStock {
			stock = "out of stock"
		}
		fmt.Printf("  [%s] %s - %s / %s (%s)\n", p.Category, p.Name, util.FormatCurrency(p.Price), p.Unit, stock)
	}
}
