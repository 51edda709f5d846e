package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	classModel "izone_backend/internals/features/academics/classes/model"
	courseModel "izone_backend/internals/features/academics/courses/model"
	locationModel "izone_backend/internals/features/academics/locations/model"
	sessionModel "izone_backend/internals/features/academics/sessions/model"
	studentModel "izone_backend/internals/features/academics/students/model"
	teacherModel "izone_backend/internals/features/academics/teachers/model"
	enrollmentModel "izone_backend/internals/features/enrollment/enrollments/model"
	costModel "izone_backend/internals/features/finance/costs/model"
	paymentModel "izone_backend/internals/features/finance/payments/model"
	notificationModel "izone_backend/internals/features/notifications/model"
	userModel "izone_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=izone&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // needed for PgBouncer transaction pooling
	}), &gorm.Config{})
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

// MigrateAll keeps the schema in sync at boot. Order matters for FKs.
func MigrateAll() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&teacherModel.TeacherModel{},
		&locationModel.LocationModel{},
		&courseModel.CourseModel{},
		&studentModel.StudentModel{},
		&classModel.ClassModel{},
		&sessionModel.SessionModel{},
		&enrollmentModel.EnrollmentModel{},
		&paymentModel.PaymentModel{},
		&costModel.CostModel{},
		&notificationModel.NotificationModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
