package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/servibook/booking-api/internal/config"
	dbpkg "github.com/servibook/booking-api/internal/db"
	"github.com/servibook/booking-api/internal/domain/role"
	"github.com/servibook/booking-api/internal/models"
)

var services = []models.Service{
	{
		Name:        "Basic Car Wash",
		Description: "Exterior wash, interior vacuum, tire shine, and window cleaning. Perfect for regular maintenance.",
		Category:    "car_wash",
		Price:       29.99,
		Duration:    30,
		Image:       "car-wash-basic.jpg",
	},
	{
		Name:        "Premium Car Detailing",
		Description: "Complete interior and exterior detailing with wax coating, leather conditioning, and engine cleaning.",
		Category:    "car_wash",
		Price:       99.99,
		Duration:    120,
		Image:       "car-wash-premium.jpg",
	},
	{
		Name:        "Express Car Wash",
		Description: "Quick exterior wash and dry. Great for when you're in a hurry!",
		Category:    "car_wash",
		Price:       15.99,
		Duration:    15,
		Image:       "car-wash-express.jpg",
	},
	{
		Name:        "Deep Home Cleaning",
		Description: "Thorough cleaning of all rooms including kitchen, bathrooms, bedrooms, and living areas.",
		Category:    "home_cleaning",
		Price:       149.99,
		Duration:    180,
		Image:       "home-cleaning-deep.jpg",
	},
	{
		Name:        "Basic Home Cleaning",
		Description: "Standard cleaning service covering dusting, vacuuming, and mopping of main areas.",
		Category:    "home_cleaning",
		Price:       79.99,
		Duration:    120,
		Image:       "home-cleaning-basic.jpg",
	},
	{
		Name:        "Kitchen Deep Clean",
		Description: "Specialized kitchen cleaning including appliances, cabinets, and countertops.",
		Category:    "home_cleaning",
		Price:       59.99,
		Duration:    90,
		Image:       "home-cleaning-kitchen.jpg",
	},
	{
		Name:        "Haircut & Styling",
		Description: "Professional haircut with wash and styling by an experienced stylist.",
		Category:    "salon",
		Price:       39.99,
		Duration:    45,
		Image:       "salon-haircut.jpg",
	},
	{
		Name:        "Manicure & Pedicure",
		Description: "Complete nail care with polish, shaping, and cuticle treatment.",
		Category:    "salon",
		Price:       49.99,
		Duration:    60,
		Image:       "salon-nails.jpg",
	},
}

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	seedUser(db, "Admin", "admin@servibook.local", "admin123", role.Admin)
	seedUser(db, "Test User", "user@servibook.local", "user123", role.User)

	for _, svc := range services {
		svc.Status = models.ServiceStatusActive
		var existing models.Service
		err := db.Where("name = ?", svc.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err := db.Create(&svc).Error; err != nil {
			log.Fatalf("failed to seed service %q: %v", svc.Name, err)
		}
		log.Printf("seeded service %q", svc.Name)
	}

	log.Println("seed complete")
}

func seedUser(db *gorm.DB, name, email, password string, r role.Role) {
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         string(r),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to seed user %q: %v", email, err)
	}
	log.Printf("seeded user %q", email)
}
