package db

import (
	"log"
	"time"

	"github.com/bellebook/salon-scheduler/internal/config"
	"github.com/bellebook/salon-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Category{},
		&models.User{},
		&models.Salon{},
		&models.Service{},
		&models.Stylist{},
		&models.TimeBlock{},
		&models.Appointment{},
		&models.Notification{},
		&models.Post{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE salons
        SET timezone = 'Asia/Seoul'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
