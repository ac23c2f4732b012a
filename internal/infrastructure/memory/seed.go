package memory

import (
	"time"

	"github.com/jannofresh/jannofresh-api/internal/domain/entity"
)

// SeedCategories returns the storefront's demo categories. Shared with
// cmd/seed so postgres and memory mode serve the same catalog.
func SeedCategories() []entity.Category {
	return []entity.Category{
		{ID: "fruits", Title: "Fruits", Image: "/images/cat-fruits.jpg"},
		{ID: "leafy-greens", Title: "Leafy Greens", Image: "/images/cat-greens.jpg"},
		{ID: "root-vegies", Title: "Root Vegetables", Image: "/images/cat-roots.jpg"},
		{ID: "peppers", Title: "Peppers", Image: "/images/cat-peppers.jpg"},
		{ID: "herbs", Title: "Herbs", Image: "/images/cat-herbs.jpg"},
		{ID: "fungi", Title: "Fungi", Image: "/images/cat-fungi.jpg"},
		{ID: "grains", Title: "Grains", Image: "/images/cat-grains.jpg"},
	}
}

// SeedProducts returns the demo catalog.
func SeedProducts() []entity.Product {
	now := time.Now()
	mk := func(id, categoryID, title string, price float64, unit, image string) entity.Product {
		return entity.Product{
			ID: id, CategoryID: categoryID, Title: title, Price: price,
			Unit: unit, Image: image, CreatedAt: now, UpdatedAt: now,
		}
	}
	return []entity.Product{
		mk("p1", "fruits", "Fresh Red Tomatoes", 2.50, "kg", "/images/veg-tomato.jpg"),
		mk("p2", "leafy-greens", "Organic Broccoli", 3.20, "pc", "/images/veg-broccoli.jpg"),
		mk("p3", "root-vegies", "Sweet Carrots", 1.80, "kg", "/images/veg-carrot.jpg"),
		mk("p4", "peppers", "Bell Peppers", 4.50, "kg", "/images/veg-peppers-mix.jpg"),
		mk("p5", "leafy-greens", "Organic Cucumbers", 1.20, "pc", "/images/veg-cucumber.jpg"),
		mk("p6", "herbs", "Fresh Garlic", 0.50, "pc", "/images/veg-garlic.jpg"),
		mk("p7", "root-vegies", "Yellow Onions", 1.50, "kg", "/images/veg-onion.jpg"),
		mk("p8", "leafy-greens", "Baby Spinach", 2.80, "kg", "/images/veg-spinach.jpg"),
		mk("p9", "root-vegies", "Fresh Eggplant", 2.00, "kg", "/images/veg-eggplant.jpg"),
		mk("p10", "root-vegies", "Organic Potatoes", 1.40, "kg", "/images/veg-potato.jpg"),
		mk("p11", "fungi", "Wild Mushrooms", 5.50, "kg", "/images/veg-mushroom.jpg"),
		mk("p12", "peppers", "Bell Pepper Mix", 4.80, "kg", "/images/veg-peppers-mix.jpg"),
		mk("p13", "grains", "Organic Rolled Oats", 3.50, "kg", "/images/veg-oats.jpg"),
	}
}
