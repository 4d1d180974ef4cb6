package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"newgate_backend/internals/configs"
	leadershipModel "newgate_backend/internals/features/about/leadership/model"
	valueModel "newgate_backend/internals/features/about/values/model"
	messageModel "newgate_backend/internals/features/contact/messages/model"
	eventModel "newgate_backend/internals/features/content/events/model"
	ministryModel "newgate_backend/internals/features/content/ministries/model"
	sermonModel "newgate_backend/internals/features/content/sermons/model"
	givingModel "newgate_backend/internals/features/giving/options/model"
	churchInfoModel "newgate_backend/internals/features/site/churchinfo/model"
	homeFeatureModel "newgate_backend/internals/features/site/homefeatures/model"
	authModel "newgate_backend/internals/features/users/auth/model"
	userModel "newgate_backend/internals/features/users/user/model"
	livestreamModel "newgate_backend/internals/features/worship/livestream/model"
	scheduleModel "newgate_backend/internals/features/worship/schedules/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=newgate&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // required for PgBouncer transaction pooling
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
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

// Migrate keeps the schema in sync with the registered models.
func Migrate() {
	err := DB.AutoMigrate(
		&eventModel.EventModel{},
		&sermonModel.SermonModel{},
		&ministryModel.MinistryModel{},
		&livestreamModel.LiveStreamModel{},
		&scheduleModel.ServiceScheduleModel{},
		&givingModel.GivingOptionModel{},
		&valueModel.ValueModel{},
		&leadershipModel.LeadershipModel{},
		&churchInfoModel.ChurchInfoModel{},
		&homeFeatureModel.HomeFeatureModel{},
		&messageModel.ContactMessageModel{},
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Migration done.")
}

func WarmUpQueries() {
	// Light touch so the pool is filled and ready before traffic lands.
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
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
