package store

import (
	"context"
	"fmt"
)

// schemaStatements returns the DDL for the given driver. The two dialects
// differ only in the primary-key and timestamp column types, so the tables
// are built from a shared template. Every statement is idempotent.
func schemaStatements(driver string) []string {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	ts := "TEXT"
	if driver == "pgx" {
		pk = "BIGSERIAL PRIMARY KEY"
		ts = "TIMESTAMPTZ"
	}

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
	id %s,
	email TEXT NOT NULL UNIQUE,
	full_name TEXT,
	hashed_password TEXT
)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS addresses (
	id %s,
	user_id BIGINT NOT NULL REFERENCES users(id),
	full_name TEXT,
	phone TEXT,
	label TEXT,
	address_line TEXT NOT NULL,
	city TEXT,
	province TEXT,
	zip_code TEXT,
	is_default BOOLEAN NOT NULL DEFAULT FALSE,
	created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, pk, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS categories (
	id %s,
	name TEXT NOT NULL UNIQUE,
	slug TEXT NOT NULL UNIQUE
)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS products (
	id %s,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	description TEXT,
	price DOUBLE PRECISION NOT NULL DEFAULT 0,
	stock BIGINT NOT NULL DEFAULT 0,
	gender TEXT,
	club_name TEXT,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	category_id BIGINT REFERENCES categories(id),
	created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, pk, ts, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS clubs (
	id %s,
	name TEXT NOT NULL UNIQUE,
	slug TEXT NOT NULL UNIQUE,
	city_key TEXT,
	crest_image_url TEXT
)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS cart_items (
	id %s,
	user_id BIGINT REFERENCES users(id),
	product_id BIGINT NOT NULL REFERENCES products(id),
	quantity BIGINT NOT NULL DEFAULT 1,
	session_id TEXT
)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS orders (
	id %s,
	order_number TEXT UNIQUE,
	user_id BIGINT REFERENCES users(id),
	status TEXT NOT NULL DEFAULT 'PENDING',
	total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
	external_reference TEXT,
	payment_id TEXT,
	customer_email TEXT,
	customer_name TEXT,
	customer_phone TEXT,
	customer_dni TEXT,
	shipping_method TEXT,
	shipping_address TEXT,
	shipping_city TEXT,
	shipping_province TEXT,
	tracking_code TEXT,
	tracking_company TEXT,
	tracking_branch_address TEXT,
	tracking_attachment_url TEXT,
	production_status TEXT,
	confirmation_email_sent BOOLEAN NOT NULL DEFAULT FALSE,
	shipped_email_sent BOOLEAN NOT NULL DEFAULT FALSE,
	created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, pk, ts, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS order_items (
	id %s,
	order_id BIGINT NOT NULL REFERENCES orders(id),
	product_id BIGINT REFERENCES products(id),
	product_name TEXT NOT NULL,
	product_size TEXT,
	quantity BIGINT NOT NULL,
	unit_price DOUBLE PRECISION NOT NULL
)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS order_production_events (
	id %s,
	order_id BIGINT NOT NULL REFERENCES orders(id),
	stage TEXT NOT NULL,
	created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, pk, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS payments (
	id %s,
	order_id BIGINT REFERENCES orders(id),
	mp_payment_id TEXT NOT NULL UNIQUE,
	transaction_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
	currency_id TEXT NOT NULL DEFAULT 'ARS',
	payment_method_id TEXT,
	payment_type_id TEXT,
	card_last_four_digits TEXT,
	card_holder_name TEXT,
	status TEXT NOT NULL DEFAULT 'pending',
	status_detail TEXT,
	refunded_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
	refunded_count BIGINT NOT NULL DEFAULT 0,
	has_chargeback BOOLEAN NOT NULL DEFAULT FALSE,
	date_created %s,
	date_approved %s,
	date_last_updated %s,
	mp_raw_data TEXT,
	created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, pk, ts, ts, ts, ts, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
	id %s,
	email TEXT NOT NULL UNIQUE,
	subscribed_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	source TEXT NOT NULL DEFAULT 'footer'
)`, pk, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS notification_emails (
	id %s,
	email TEXT NOT NULL UNIQUE,
	verified BOOLEAN NOT NULL DEFAULT FALSE,
	created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP,
	verified_at %s
)`, pk, ts, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS hero_media (
	id %s,
	title TEXT NOT NULL DEFAULT '',
	subtitle TEXT,
	highlight TEXT,
	image_url TEXT NOT NULL,
	video_url TEXT,
	link_url TEXT,
	image_focus_x BIGINT NOT NULL DEFAULT 50,
	image_focus_y BIGINT NOT NULL DEFAULT 50,
	image_zoom BIGINT NOT NULL DEFAULT 100,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	display_order BIGINT NOT NULL DEFAULT 0,
	show_overlay BOOLEAN NOT NULL DEFAULT TRUE,
	aspect_ratio_desktop TEXT NOT NULL DEFAULT '16:6',
	aspect_ratio_mobile TEXT NOT NULL DEFAULT '4:3',
	created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, pk, ts, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS promo_banners (
	id %s,
	message TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	display_order BIGINT NOT NULL DEFAULT 0,
	created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, pk, ts, ts),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS promo_banner_settings (
	id %s,
	change_interval_seconds BIGINT NOT NULL DEFAULT 4,
	created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, pk, ts, ts),

		`CREATE TABLE IF NOT EXISTS product_price_settings (
	id BIGINT PRIMARY KEY,
	price_hincha DOUBLE PRECISION NOT NULL DEFAULT 59900,
	price_jugador DOUBLE PRECISION NOT NULL DEFAULT 69900,
	price_profesional DOUBLE PRECISION NOT NULL DEFAULT 89900
)`,

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS unique_visits (
	id %s,
	session_id TEXT NOT NULL UNIQUE,
	created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
)`, pk, ts),

		`CREATE INDEX IF NOT EXISTS idx_products_club_name ON products(club_name)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_external_reference ON orders(external_reference)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_payment_id ON orders(payment_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer_email ON orders(customer_email)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_order_id ON payments(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_addresses_user_id ON addresses(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cart_items_session_id ON cart_items(session_id)`,
	}
}

// EnsureSchema creates any missing tables and indexes and inserts the seed
// rows a fresh install needs. Safe to run on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements(s.db.DriverName()) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return s.seedDefaults(ctx)
}

const sqlSeedPriceSettings = `
INSERT INTO product_price_settings (id, price_hincha, price_jugador, price_profesional)
VALUES (1, 59900, 69900, 89900)
ON CONFLICT (id) DO NOTHING
`

const sqlSeedBannerSettings = `
INSERT INTO promo_banner_settings (change_interval_seconds)
SELECT 4
WHERE NOT EXISTS (SELECT 1 FROM promo_banner_settings)
`

const sqlSeedPromoBanner = `
INSERT INTO promo_banners (message, display_order, is_active)
VALUES ($1, $2, TRUE)
`

const sqlCountHeroMedia = `SELECT COUNT(*) FROM hero_media`

const sqlSeedHeroMedia = `
INSERT INTO hero_media (title, subtitle, highlight, image_url, display_order, is_active)
VALUES ($1, $2, $3, $4, $5, TRUE)
`

func (s *Store) seedDefaults(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqlSeedPriceSettings); err != nil {
		return fmt.Errorf("failed to seed price settings: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, sqlSeedBannerSettings); err != nil {
		return fmt.Errorf("failed to seed banner settings: %w", err)
	}

	var banners int
	if err := s.db.GetContext(ctx, &banners, sqlCountPromoBanners); err != nil {
		return fmt.Errorf("failed to count promo banners: %w", err)
	}
	if banners == 0 {
		defaults := []string{
			"🚚 Envíos gratis a partir de $100.000",
			"💳 3 cuotas sin interés",
			"🏦 Recibimos solo Transferencia por ahora",
		}
		for i, message := range defaults {
			if _, err := s.db.ExecContext(ctx, sqlSeedPromoBanner, message, i); err != nil {
				return fmt.Errorf("failed to seed promo banner: %w", err)
			}
		}
	}

	var slides int
	if err := s.db.GetContext(ctx, &slides, sqlCountHeroMedia); err != nil {
		return fmt.Errorf("failed to count hero media: %w", err)
	}
	if slides == 0 {
		if _, err := s.db.ExecContext(ctx, sqlSeedHeroMedia,
			"NO ES SOLO UNA CAMISETA", "ES LA NUESTRA", "CAMISETA", "/hero-banner-hd.jpg", 0); err != nil {
			return fmt.Errorf("failed to seed hero media: %w", err)
		}
		if _, err := s.db.ExecContext(ctx, sqlSeedHeroMedia,
			"NO LAS VENDEMOS, LAS VIVIMOS", "SOMOS PARTE DEL EQUIPO", "VIVIMOS", "/hero-banner-hd.jpg", 1); err != nil {
			return fmt.Errorf("failed to seed hero media: %w", err)
		}
	}
	return nil
}
