package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/locvowork/employee_service/internal/bootstrap"
	"github.com/locvowork/employee_service/internal/database"
	"github.com/locvowork/employee_service/internal/logger"
)

func main() {
	action := flag.String("action", "seed", "Action to perform: seed, clear, reindex")
	preset := flag.String("preset", "medium", "Data preset: small, medium, large")
	count := flag.Int("count", 0, "Number of employees to create (overrides preset)")
	yes := flag.Bool("yes", false, "Skip the confirmation prompt for clear")

	flag.Parse()

	ctx := context.Background()

	fmt.Println("Employee Data Seeder")
	fmt.Println(strings.Repeat("=", 50))

	app := bootstrap.NewApp()
	if err := app.InitializeStorage(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize storage: %v", err)
		log.Fatal(err)
	}
	defer app.Close()

	seeder := database.NewDataSeeder(app.Repository, app.Search)

	switch *action {
	case "seed":
		performSeed(ctx, seeder, *preset, *count)

	case "clear":
		performClear(ctx, seeder, *yes)

	case "reindex":
		n, err := seeder.Reindex(ctx)
		if err != nil {
			log.Fatalf("Reindex failed: %v", err)
		}
		fmt.Printf("Reindexed %d employees\n", n)

	default:
		fmt.Printf("Unknown action: %s\n", *action)
		flag.PrintDefaults()
		return
	}

	fmt.Println("\nDone!")
}

func performSeed(ctx context.Context, seeder *database.DataSeeder, preset string, count int) {
	n := count
	if n <= 0 {
		n = database.GetPresetCount(database.SeedPreset(preset))
		fmt.Printf("Using preset: %s (%d employees)\n", preset, n)
	}

	created, err := seeder.SeedData(ctx, n)
	if err != nil {
		log.Fatalf("Seeding failed after %d employees: %v", created, err)
	}
	fmt.Printf("Created %d employees\n", created)
}

func performClear(ctx context.Context, seeder *database.DataSeeder, yes bool) {
	if !yes {
		fmt.Println("This will delete all employees!")
		fmt.Print("Continue? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		if response != "yes" {
			fmt.Println("Cancelled.")
			return
		}
	}

	n, err := seeder.ClearData(ctx)
	if err != nil {
		log.Fatalf("Clear failed: %v", err)
	}
	fmt.Printf("Deleted %d employees\n", n)
}
