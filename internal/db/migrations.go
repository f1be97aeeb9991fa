package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'bulletin_status') THEN
			CREATE TYPE bulletin_status AS ENUM ('DRAFT', 'VALIDATED', 'CANCELLED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'credit_type') THEN
			CREATE TYPE credit_type AS ENUM ('MONEY', 'TOOLS');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS farmers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		first_name VARCHAR(128) NOT NULL,
		last_name VARCHAR(128) NOT NULL,
		phone VARCHAR(32),
		village VARCHAR(128),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS plantations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		farmer_id UUID NOT NULL REFERENCES farmers(id),
		name VARCHAR(128) NOT NULL,
		area_hectares NUMERIC(10,2) NOT NULL DEFAULT 0,
		village VARCHAR(128),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		full_name VARCHAR(255) NOT NULL,
		position VARCHAR(128),
		phone VARCHAR(32),
		salary NUMERIC(18,2) NOT NULL DEFAULT 0,
		hired_at DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS transporters (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(32),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		transporter_id UUID NOT NULL REFERENCES transporters(id),
		plate_number VARCHAR(32) NOT NULL,
		brand VARCHAR(64),
		capacity_kg NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_vehicle_plate ON vehicles (plate_number);`,
	`CREATE TABLE IF NOT EXISTS weighings (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		farmer_id UUID NOT NULL REFERENCES farmers(id),
		plantation_id UUID REFERENCES plantations(id),
		transporter_id UUID REFERENCES transporters(id),
		vehicle_id UUID REFERENCES vehicles(id),
		ticket_number VARCHAR(64) NOT NULL,
		weighed_at TIMESTAMPTZ NOT NULL,
		loaded_weight_kg NUMERIC(12,3) NOT NULL,
		empty_weight_kg NUMERIC(12,3) NOT NULL,
		net_weight_kg NUMERIC(12,3) NOT NULL,
		price_per_kg NUMERIC(18,4) NOT NULL,
		transport_cost_per_kg NUMERIC(18,4) NOT NULL,
		tax_rate NUMERIC(5,2) NOT NULL,
		gross_amount NUMERIC(18,2) NOT NULL,
		transport_cost NUMERIC(18,2) NOT NULL,
		tax_amount NUMERIC(18,2) NOT NULL,
		net_amount NUMERIC(18,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_weighing_ticket ON weighings (ticket_number);`,
	`CREATE INDEX IF NOT EXISTS idx_weighing_farmer_id ON weighings (farmer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_weighing_weighed_at ON weighings (weighed_at);`,
	`CREATE TABLE IF NOT EXISTS credits (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		farmer_id UUID NOT NULL REFERENCES farmers(id),
		type credit_type NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		description TEXT,
		issued_at DATE NOT NULL,
		installments_count INT NOT NULL DEFAULT 0,
		deduction_start_date DATE,
		is_paid BOOLEAN NOT NULL DEFAULT FALSE,
		paid_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_credit_farmer_id ON credits (farmer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_credit_is_paid ON credits (is_paid);`,
	`CREATE TABLE IF NOT EXISTS credit_installments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		credit_id UUID NOT NULL REFERENCES credits(id) ON DELETE CASCADE,
		seq INT NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		due_date DATE NOT NULL,
		is_paid BOOLEAN NOT NULL DEFAULT FALSE,
		UNIQUE (credit_id, seq)
	);`,
	`CREATE TABLE IF NOT EXISTS bulletins (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		farmer_id UUID NOT NULL REFERENCES farmers(id),
		period VARCHAR(64) NOT NULL,
		gross_amount NUMERIC(18,2) NOT NULL,
		credits_deducted NUMERIC(18,2) NOT NULL,
		net_amount NUMERIC(18,2) NOT NULL,
		status bulletin_status NOT NULL DEFAULT 'DRAFT',
		generated_date DATE NOT NULL,
		validated_at TIMESTAMPTZ,
		cancelled_at TIMESTAMPTZ,
		created_by_user_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_bulletin_farmer_id ON bulletins (farmer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_bulletin_status ON bulletins (status);`,
	`CREATE TABLE IF NOT EXISTS bulletin_weighings (
		bulletin_id UUID NOT NULL REFERENCES bulletins(id) ON DELETE CASCADE,
		weighing_id UUID NOT NULL REFERENCES weighings(id),
		PRIMARY KEY (bulletin_id, weighing_id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_bulletin_weighing_weighing_id ON bulletin_weighings (weighing_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
