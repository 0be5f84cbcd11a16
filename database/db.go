package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// Plan is a persisted trip plan: the request echo, the canonical plan as JSON
// and the rendered PDF bytes.
type Plan struct {
	ID            string    `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departure_date"`
	ReturnDate    string    `json:"return_date"`
	Travelers     int       `json:"travelers"`
	PlanJSON      string    `json:"plan_json"`
	PDFData       []byte    `json:"pdf_data,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// InitDB connects to PostgreSQL and runs migrations. Persistence is optional:
// with no DATABASE_URL the planner still works and downloads are unavailable.
func InitDB(databaseURL string) {
	if databaseURL == "" {
		log.Println("⚠️  DATABASE_URL not set — plans will not be persisted")
		return
	}

	var err error
	DB, err = sql.Open("postgres", databaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	// The database may take a moment to be ready at deploy time.
	for i := 0; i < 10; i++ {
		if err = DB.Ping(); err == nil {
			break
		}
		log.Printf("⏳ Waiting for database... attempt %d/10: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("❌ Failed to connect to database after retries: %v", err)
	}

	migrate()
	log.Println("✅ Database connected and migrated")
}

func migrate() {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS plans (
			id             TEXT PRIMARY KEY,
			origin         TEXT NOT NULL,
			destination    TEXT NOT NULL,
			departure_date TEXT NOT NULL,
			return_date    TEXT,
			travelers      INTEGER DEFAULT 1,
			plan_json      TEXT,
			pdf_data       BYTEA,
			created_at     TIMESTAMPTZ DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_plans_created_at
			ON plans(created_at DESC)`,
	}

	for _, m := range migrations {
		if _, err := DB.Exec(m); err != nil {
			log.Fatalf("❌ Migration failed: %v\nSQL: %s", err, m)
		}
	}
}

// SavePlan stores a generated plan. A nil DB is a no-op so the planning
// endpoint keeps working without persistence.
func SavePlan(p *Plan) error {
	if DB == nil {
		return nil
	}
	_, err := DB.Exec(`
		INSERT INTO plans (id, origin, destination, departure_date, return_date, travelers, plan_json, pdf_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Origin, p.Destination, p.DepartureDate, p.ReturnDate, p.Travelers, p.PlanJSON, p.PDFData)
	return err
}

// GetPlan fetches a stored plan by ID.
func GetPlan(id string) (*Plan, error) {
	if DB == nil {
		return nil, sql.ErrConnDone
	}
	p := &Plan{}
	err := DB.QueryRow(`
		SELECT id, origin, destination, departure_date, return_date, travelers, plan_json, pdf_data, created_at
		FROM plans WHERE id = $1`, id).
		Scan(&p.ID, &p.Origin, &p.Destination, &p.DepartureDate, &p.ReturnDate,
			&p.Travelers, &p.PlanJSON, &p.PDFData, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}
