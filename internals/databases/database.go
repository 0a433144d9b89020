package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"nextstep_backend/internals/configs"
	quizModel "nextstep_backend/internals/features/assessments/quiz/model"
	certModel "nextstep_backend/internals/features/directories/certifications/model"
	collegeModel "nextstep_backend/internals/features/directories/colleges/model"
	userModel "nextstep_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=nextstep&options=-c statement_timeout=5000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // plays well with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond) // give the server a moment to come up
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// AutoMigrate keeps the schema in sync when DB_AUTOMIGRATE=true. Production
// environments run DDL migrations out-of-band and leave this off.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.InterestModel{},
		&userModel.UserInterestModel{},
		&quizModel.QuizModel{},
		&quizModel.QuizQuestionModel{},
		&quizModel.QuizResponseModel{},
		&collegeModel.CollegeModel{},
		&certModel.CertificationModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ AutoMigrate done.")
}

// SeedDirectories fills the college and certification directories when empty.
func SeedDirectories() {
	if err := collegeModel.SeedIfEmpty(DB); err != nil {
		log.Printf("[ERROR] seed colleges: %v", err)
	}
	if err := certModel.SeedIfEmpty(DB); err != nil {
		log.Printf("[ERROR] seed certifications: %v", err)
	}
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
