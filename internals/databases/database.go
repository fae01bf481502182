package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bancohoras_backend/internals/configs"
	funcModel "bancohoras_backend/internals/features/funcionarios/model"
	registroModel "bancohoras_backend/internals/features/horas/registros/model"
	resumoModel "bancohoras_backend/internals/features/horas/resumos/model"
	areaModel "bancohoras_backend/internals/features/organizacao/areas/model"
	cargoModel "bancohoras_backend/internals/features/organizacao/cargos/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando ao PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=bancohoras&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	DB = db
	log.Println("✅ Banco conectado.")
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

// Migrate cria/ajusta as tabelas do domínio. Ordem respeita as FKs.
func Migrate() {
	if err := DB.AutoMigrate(
		&areaModel.AreaAtuacaoModel{},
		&cargoModel.CargoModel{},
		&funcModel.FuncionarioModel{},
		&registroModel.RegistroHoraModel{},
		&resumoModel.ResumoDiarioModel{},
	); err != nil {
		log.Fatalf("❌ Falha na migração: %v", err)
	}
	log.Println("✅ Migração concluída.")
}

func WarmUpQueries() {
	// ping leve para encher o pool antes da primeira requisição
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
