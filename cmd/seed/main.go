// Command seed loads the demo user and sample recipes into the backing
// store, matching the data the original app shipped with.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipevault/recipevault/config"
	"github.com/recipevault/recipevault/internal/database"
	"github.com/recipevault/recipevault/internal/models"
	"github.com/recipevault/recipevault/internal/store"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash demo password")
	}

	demo := models.User{
		ID:           "1",
		Email:        "demo@example.com",
		PasswordHash: string(hash),
		Name:         "Demo User",
		Bio:          "I love cooking and experimenting with new recipes!",
		AvatarURL:    store.AvatarURL("Demo User"),
		Favorites:    models.StringList{"1", "3"},
	}
	if err := db.Where("email = ?", demo.Email).FirstOrCreate(&demo).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo user")
	}
	log.Info().Str("email", demo.Email).Msg("seeded demo user")

	for _, recipe := range sampleRecipes() {
		r := recipe
		if err := db.Where("id = ?", r.ID).FirstOrCreate(&r).Error; err != nil {
			log.Fatal().Err(err).Str("title", r.Title).Msg("failed to seed recipe")
		}
		log.Info().Str("title", r.Title).Msg("seeded recipe")
	}
}

func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:          "1",
			UserID:      "1",
			Title:       "Creamy Garlic Pasta",
			Description: "A delicious creamy pasta dish with garlic flavor",
			CookingTime: 30,
			Rating:      4.8,
			Category:    "Dinner",
			Difficulty:  models.DifficultyEasy,
			Ingredients: models.IngredientList{
				{Name: "pasta", Amount: "250", Unit: "g"},
				{Name: "heavy cream", Amount: "200", Unit: "ml"},
				{Name: "garlic", Amount: "4", Unit: "piece", Substitutes: "garlic powder"},
				{Name: "parmesan cheese", Amount: "50", Unit: "g"},
			},
			Instructions: models.StringList{
				"Boil pasta according to package instructions.",
				"In a pan, saute minced garlic until fragrant.",
				"Pour in the heavy cream and let simmer for 3 minutes.",
				"Add the drained pasta to the sauce, stir in parmesan cheese.",
				"Season with salt and pepper to taste.",
			},
			DietaryRestrictions: models.StringList{"Vegetarian"},
		},
		{
			ID:          "3",
			UserID:      "1",
			Title:       "Chicken Stir Fry",
			Description: "Quick and healthy stir fry with fresh vegetables",
			CookingTime: 25,
			Rating:      4.6,
			Category:    "Dinner",
			Difficulty:  models.DifficultyMedium,
			Ingredients: models.IngredientList{
				{Name: "chicken breast", Amount: "300", Unit: "g"},
				{Name: "broccoli", Amount: "1", Unit: "cup"},
				{Name: "carrot", Amount: "1", Unit: "piece"},
				{Name: "soy sauce", Amount: "3", Unit: "tbsp", Substitutes: "tamari"},
				{Name: "vegetable oil", Amount: "1", Unit: "tbsp"},
			},
			Instructions: models.StringList{
				"Slice chicken breast into thin strips.",
				"Heat oil in a wok over high heat.",
				"Add chicken and stir-fry until no longer pink.",
				"Add vegetables and stir-fry for 3-4 minutes.",
				"Add soy sauce and cook for another minute.",
				"Serve hot with rice.",
			},
			DietaryRestrictions: models.StringList{},
		},
	}
}
