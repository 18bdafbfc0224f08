package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mojalektira/backend/models"
)

var DB *gorm.DB

func InitDB() {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Europe/Sarajevo",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Neuspješna konekcija na bazu:", err)
	}

	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Ne mogu dobiti sql.DB iz gorm-a:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	err = DB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Book{},
		&models.Quiz{},
		&models.Question{},
		&models.QuizResult{},
		&models.BlogPost{},
		&models.ContactMessage{},
		&models.Partner{},
		&models.Challenge{},
		&models.ClassChallenge{},
		&models.BonusPoints{},
		&models.BookRecommendation{},
		&models.BookBorrowing{},
	)
	if err != nil {
		log.Fatal("AutoMigrate greška: ", err)
	}
	log.Println("PostgreSQL povezan i migriran.")
}
