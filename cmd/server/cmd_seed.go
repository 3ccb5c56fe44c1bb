package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/homegrown/config"
	"github.com/shashiranjanraj/homegrown/database/seeders"
	"github.com/shashiranjanraj/homegrown/pkg/database"
)

// homegrown seed: load demo catalogue data.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo products and subcategories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := database.Connect(ctx); err != nil {
			return err
		}
		defer database.Disconnect(context.Background()) //nolint:errcheck

		if err := seeders.Run(ctx); err != nil {
			return err
		}
		fmt.Println("Seeding complete.")
		return nil
	},
}
