package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/nestfinder/browse-api/internal/catalog"
)

// catalogctl loads a seed dataset, validates it and prints a summary.
// Useful before pointing SEED_SOURCE at a new dataset.
func main() {
	_ = godotenv.Load()

	strict := flag.Bool("strict", false, "exit non-zero when validation warns")
	flag.Parse()

	source := flag.Arg(0)
	if source == "" {
		source = os.Getenv("SEED_SOURCE")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cat, err := catalog.LoadSource(ctx, source)
	if err != nil {
		log.Fatalf("load error: %v", err)
	}

	warns := cat.Validate()
	for _, w := range warns {
		fmt.Printf("WARN %s\n", w)
	}

	fmt.Printf("listings: %d\n", cat.Len())
	fmt.Printf("agents:   %d\n", len(cat.Agents()))
	fmt.Printf("featured: %d\n", len(cat.Featured()))
	fmt.Println("by city:")
	for _, city := range cat.Cities() {
		fmt.Printf("  %-12s %d\n", city, len(cat.ListingsByCity(city)))
	}
	fmt.Println("by type:")
	for _, t := range cat.Types() {
		n := 0
		for _, l := range cat.Listings() {
			if l.Type == t {
				n++
			}
		}
		fmt.Printf("  %-12s %d\n", t, n)
	}
	minPrice, maxPrice := cat.PriceRange()
	fmt.Printf("price range: %d - %d\n", minPrice, maxPrice)

	if *strict && len(warns) > 0 {
		os.Exit(1)
	}
}
