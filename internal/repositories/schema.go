package repositories

import "database/sql"

// EnsureSchema creates the tables the storefront needs when they are
// absent. Safe to run on every boot.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(191) NOT NULL,
			email VARCHAR(191) NOT NULL UNIQUE,
			phone VARCHAR(32) NOT NULL DEFAULT '',
			profile_picture VARCHAR(512) NOT NULL DEFAULT '',
			ruleta_enabled TINYINT(1) NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS products (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(191) NOT NULL,
			description TEXT,
			price BIGINT NOT NULL DEFAULT 0,
			images TEXT,
			category_id BIGINT NOT NULL DEFAULT 0,
			stock INT NOT NULL DEFAULT 0,
			personalizable TINYINT(1) NOT NULL DEFAULT 0,
			featured TINYINT(1) NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS reviews (
			id CHAR(24) PRIMARY KEY,
			product_id BIGINT NOT NULL,
			client_name VARCHAR(191) NOT NULL,
			profile_picture VARCHAR(512) NOT NULL DEFAULT '',
			rating INT NOT NULL,
			message TEXT NOT NULL,
			response TEXT,
			status VARCHAR(16) NOT NULL DEFAULT 'pending',
			image_url VARCHAR(512) NOT NULL DEFAULT '',
			video_url VARCHAR(512) NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_reviews_product (product_id),
			INDEX idx_reviews_status (status)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS sales (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			client_name VARCHAR(191) NOT NULL,
			product_name VARCHAR(191) NOT NULL,
			quantity INT NOT NULL DEFAULT 1,
			total BIGINT NOT NULL DEFAULT 0,
			status VARCHAR(32) NOT NULL DEFAULT 'completada',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
