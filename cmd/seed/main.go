package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/crypto/bcrypt"

	"restroomfinder/internal/database"
	"restroomfinder/internal/domain"
)

type ownerSeed struct {
	name  string
	email string
	phone string
}

type restroomSeed struct {
	name         string
	address      string
	latitude     float64
	longitude    float64
	isFree       bool
	price        int64
	totalReviews int
	ownerIdx     int
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "restroomfinder.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM chat_messages")
	db.Exec("DELETE FROM usage_records")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM restrooms")
	db.Exec("DELETE FROM owners")
	db.Exec("DELETE FROM users")

	log.Println("Creating owners...")
	ownerSeeds := []ownerSeed{
		{"Công ty Highland Coffee Việt Nam", "admin@highlands.vn", "0901234567"},
		{"Tập đoàn Central Retail", "admin@circlek.vn", "0902345678"},
		{"KFC Vietnam", "admin@kfc.vn", "0903456789"},
		{"The Coffee House", "admin@thecoffeehouse.vn", "0904567890"},
		{"Lotte Holdings", "admin@lotteria.vn", "0905678901"},
	}

	owners := make([]domain.Owner, 0, len(ownerSeeds))
	for _, seed := range ownerSeeds {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		owner := domain.Owner{
			Name:         seed.name,
			Email:        seed.email,
			Phone:        seed.phone,
			PasswordHash: string(hash),
		}
		db.Create(&owner)
		owners = append(owners, owner)
		log.Printf("owner created email=%s password=owner123", owner.Email)
	}

	// Dĩ An, Bình Dương area, 100m to 2km from ~10.88, 106.79.
	log.Println("Creating restrooms...")
	restroomSeeds := []restroomSeed{
		{"Highlands Coffee - Vincom Dĩ An", "Vincom Plaza Dĩ An, Đại lộ Bình Dương, Dĩ An, Bình Dương", 10.8815, 106.7920, true, 0, 15, 0},
		{"Circle K - Đại học Quốc gia", "Khu phố 6, Linh Trung, Thủ Đức", 10.8790, 106.7940, true, 0, 23, 1},
		{"KFC - Aeon Mall Bình Dương", "Aeon Mall Bình Dương, số 1 Đại lộ Bình Dương, Dĩ An", 10.8750, 106.7850, false, 2000, 8, 2},
		{"The Coffee House - Đại học Bách Khoa", "Khu phố Tân Lập, Dĩ An, Bình Dương", 10.8820, 106.7880, true, 0, 31, 3},
		{"Lotteria - Dĩ An", "QL1A, Dĩ An, Bình Dương", 10.8850, 106.7960, true, 0, 12, 4},
		{"Phúc Long Coffee - Dĩ An", "Đường Nguyễn Tri Phương, Dĩ An, Bình Dương", 10.8805, 106.7900, false, 3000, 19, 0},
		{"Ministop - Tân Lập", "Khu phố Tân Lập, Dĩ An, Bình Dương", 10.8770, 106.7860, true, 0, 7, 1},
		{"Trung tâm thương mại Dĩ An", "Đường Đại lộ Bình Dương, Dĩ An, Bình Dương", 10.8840, 106.7890, false, 5000, 0, 2},
	}

	for _, seed := range restroomSeeds {
		ownerID := owners[seed.ownerIdx].ID
		restroom := domain.Restroom{
			Name:         seed.name,
			Address:      seed.address,
			Latitude:     seed.latitude,
			Longitude:    seed.longitude,
			OwnerID:      &ownerID,
			IsFree:       seed.isFree,
			Price:        seed.price,
			Rating:       5.0,
			TotalReviews: seed.totalReviews,
			AdminContact: owners[seed.ownerIdx].Email,
		}
		db.Create(&restroom)
	}

	log.Println("Database initialized with sample data!")
}
