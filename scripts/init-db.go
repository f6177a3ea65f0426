package main

import (
	"fmt"
	"log"
	"restaurant_panel/internal/config"
	"restaurant_panel/internal/database"
	"restaurant_panel/internal/migrations"
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/repository"

	"gorm.io/gorm"
)

func main() {
	fmt.Println("Initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.PromotionItem{},
		&models.Promotion{},
		&models.Order{},
		&models.Product{},
		&models.Group{},
		&models.StoreSettings{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	fmt.Println("Creating tables...")
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Seeding sample catalog...")
	if err := seedCatalog(db); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}

func seedCatalog(db *gorm.DB) error {
	groupRepo := repository.NewGroupRepository(db)
	productRepo := repository.NewProductRepository(db)

	groups := map[string]*models.Group{}
	for _, name := range []string{"Pizzas", "Bebidas", "Sobremesas"} {
		group := &models.Group{Name: name}
		if err := groupRepo.Create(group); err != nil {
			return err
		}
		groups[name] = group
	}

	products := []models.Product{
		{Name: "Pizza Margherita", Description: "Molho de tomate, muçarela e manjericão", Price: 45.00, Available: true, GroupID: &groups["Pizzas"].ID},
		{Name: "Pizza Calabresa", Description: "Calabresa fatiada com cebola", Price: 48.00, Available: true, GroupID: &groups["Pizzas"].ID},
		{Name: "Refrigerante Lata", Description: "350ml", Price: 6.00, Available: true, GroupID: &groups["Bebidas"].ID},
		{Name: "Suco Natural", Description: "500ml", Price: 10.00, Available: true, GroupID: &groups["Bebidas"].ID},
		{Name: "Pudim", Description: "Fatia", Price: 12.00, Available: true, GroupID: &groups["Sobremesas"].ID},
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			return err
		}
	}

	return nil
}
