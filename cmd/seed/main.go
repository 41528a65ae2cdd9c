// Programa de inicialización: crea el esquema si no existe y siembra el usuario
// admin y datos de demostración cuando las tablas están vacías.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/infrastructure/postgres"
	"github.com/serviceflow/serviceflow-api/pkg/config"
	"github.com/serviceflow/serviceflow-api/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	brand       TEXT NOT NULL DEFAULT '',
	stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	price       NUMERIC(12,2) NOT NULL DEFAULT 0,
	image_url   TEXT,
	min_stock   INTEGER NOT NULL DEFAULT 5,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS parts (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	sku               TEXT NOT NULL UNIQUE,
	stock             INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
	price             NUMERIC(12,2) NOT NULL DEFAULT 0,
	compatible_models JSONB NOT NULL DEFAULT '[]',
	min_stock         INTEGER NOT NULL DEFAULT 5,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS tickets (
	id             TEXT PRIMARY KEY,
	date           TIMESTAMPTZ NOT NULL DEFAULT now(),
	customer_name  TEXT NOT NULL,
	payment_method TEXT,
	payment_status TEXT NOT NULL DEFAULT 'Pending',
	subtotal       NUMERIC(12,2) NOT NULL DEFAULT 0,
	tax            NUMERIC(12,2) NOT NULL DEFAULT 0,
	total          NUMERIC(12,2) NOT NULL DEFAULT 0,
	exchange_rate  NUMERIC(14,4),
	amount_usd     NUMERIC(12,2) NOT NULL DEFAULT 0,
	amount_ves     NUMERIC(14,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS ticket_items (
	id         TEXT PRIMARY KEY,
	ticket_id  TEXT NOT NULL REFERENCES tickets(id) ON DELETE CASCADE,
	product_id TEXT NOT NULL,
	quantity   INTEGER NOT NULL CHECK (quantity > 0),
	price      NUMERIC(12,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS work_orders (
	id                        TEXT PRIMARY KEY,
	code                      TEXT NOT NULL UNIQUE,
	customer_name             TEXT NOT NULL,
	customer_phone            TEXT,
	customer_id_number        TEXT,
	device                    TEXT NOT NULL,
	issue                     TEXT,
	status                    TEXT NOT NULL DEFAULT 'Recibido',
	received_date             TIMESTAMPTZ NOT NULL DEFAULT now(),
	estimated_completion_date TIMESTAMPTZ,
	repair_cost               NUMERIC(12,2) NOT NULL DEFAULT 0,
	amount_paid               NUMERIC(12,2) NOT NULL DEFAULT 0,
	payment_status            TEXT NOT NULL DEFAULT 'Pendiente',
	payment_date              TIMESTAMPTZ,
	payment_notes             TEXT,
	created_at                TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at                TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'technician',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_tickets_payment_status ON tickets (payment_status);
CREATE INDEX IF NOT EXISTS idx_work_orders_status ON work_orders (status);
CREATE INDEX IF NOT EXISTS idx_ticket_items_ticket ON ticket_items (ticket_id);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name + "-seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("Esquema verificado")

	seedAdmin(ctx, pool, log)
	seedDemoInventory(ctx, pool, log)

	log.Info().Msg("Inicialización completada")
}

// seedAdmin crea el usuario admin/admin123 si no hay usuarios.
func seedAdmin(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) {
	userRepo := postgres.NewUserRepository(pool)

	total, err := userRepo.Count()
	if err != nil {
		log.Fatal().Err(err).Msg("contar usuarios")
	}
	if total > 0 {
		log.Info().Int("usuarios", total).Msg("Usuarios ya existentes, admin no sembrado")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña de admin")
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear usuario admin")
	}
	log.Info().Str("username", admin.Username).Msg("Usuario admin creado (cambie la contraseña)")
}

// seedDemoInventory siembra productos y repuestos de demostración si las tablas están vacías.
func seedDemoInventory(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) {
	var productCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&productCount); err != nil {
		log.Fatal().Err(err).Msg("contar productos")
	}
	if productCount == 0 {
		productRepo := postgres.NewProductRepository(pool)
		now := time.Now()
		demos := []*entity.Product{
			{ID: uuid.New().String(), Name: "Protector de pantalla templado", Brand: "Genérico", Stock: 50, Price: decimal.NewFromInt(5), MinStock: 10, CreatedAt: now, UpdatedAt: now},
			{ID: uuid.New().String(), Name: "Cargador USB-C 20W", Brand: "Samsung", Stock: 30, Price: decimal.NewFromInt(15), MinStock: 5, CreatedAt: now, UpdatedAt: now},
			{ID: uuid.New().String(), Name: "Audífonos inalámbricos", Brand: "Xiaomi", Stock: 20, Price: decimal.NewFromInt(25), MinStock: 5, CreatedAt: now, UpdatedAt: now},
		}
		for _, p := range demos {
			if err := productRepo.Create(p); err != nil {
				log.Fatal().Err(err).Str("producto", p.Name).Msg("sembrar producto")
			}
		}
		log.Info().Int("productos", len(demos)).Msg("Productos de demostración creados")
	}

	var partCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM parts`).Scan(&partCount); err != nil {
		log.Fatal().Err(err).Msg("contar repuestos")
	}
	if partCount == 0 {
		partRepo := postgres.NewPartRepository(pool)
		now := time.Now()
		demos := []*entity.Part{
			{ID: uuid.New().String(), Name: "Pantalla iPhone 12", SKU: "PANT-IP12", Stock: 8, Price: decimal.NewFromInt(90), CompatibleModels: []string{"iPhone 12", "iPhone 12 Pro"}, MinStock: 3, CreatedAt: now, UpdatedAt: now},
			{ID: uuid.New().String(), Name: "Batería Samsung A52", SKU: "BAT-SA52", Stock: 12, Price: decimal.NewFromInt(35), CompatibleModels: []string{"Galaxy A52", "Galaxy A52s"}, MinStock: 4, CreatedAt: now, UpdatedAt: now},
			{ID: uuid.New().String(), Name: "Pin de carga USB-C", SKU: "PIN-USBC", Stock: 25, Price: decimal.NewFromInt(8), CompatibleModels: []string{"Universal"}, MinStock: 10, CreatedAt: now, UpdatedAt: now},
		}
		for _, p := range demos {
			if err := partRepo.Create(p); err != nil {
				log.Fatal().Err(err).Str("repuesto", p.Name).Msg("sembrar repuesto")
			}
		}
		log.Info().Int("repuestos", len(demos)).Msg("Repuestos de demostración creados")
	}
}
