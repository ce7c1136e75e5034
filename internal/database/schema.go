package database

import "context"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT,
		image_url TEXT,
		status TEXT DEFAULT 'active',
		sort_order INTEGER DEFAULT 0,
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT,
		short_description TEXT,
		price NUMERIC(10,2) NOT NULL,
		compare_price NUMERIC(10,2),
		category_id INTEGER REFERENCES categories(id),
		sku TEXT UNIQUE,
		stock_quantity INTEGER DEFAULT 0,
		weight NUMERIC(10,2),
		dimensions TEXT,
		status TEXT DEFAULT 'active',
		featured BOOLEAN DEFAULT FALSE,
		tags TEXT,
		meta_title TEXT,
		meta_description TEXT,
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS product_images (
		id SERIAL PRIMARY KEY,
		product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		image_url TEXT NOT NULL,
		alt_text TEXT,
		sort_order INTEGER DEFAULT 0,
		is_primary BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT DEFAULT 'user',
		status TEXT DEFAULT 'active',
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		order_number TEXT UNIQUE NOT NULL,
		customer_email TEXT NOT NULL,
		customer_name TEXT,
		customer_phone TEXT,
		status TEXT DEFAULT 'pending',
		payment_status TEXT DEFAULT 'pending',
		subtotal NUMERIC(10,2) NOT NULL,
		tax_amount NUMERIC(10,2) DEFAULT 0.00,
		shipping_amount NUMERIC(10,2) DEFAULT 0.00,
		total_amount NUMERIC(10,2) NOT NULL,
		payment_method TEXT,
		payment_id TEXT,
		shipping_address TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id INTEGER REFERENCES products(id),
		product_title TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price NUMERIC(10,2) NOT NULL,
		total_price NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id SERIAL PRIMARY KEY,
		setting_key TEXT UNIQUE NOT NULL,
		setting_value TEXT,
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
}

// EnsureSchema creates the relational tables if they do not exist yet.
func (p *PostgresDB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := p.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
