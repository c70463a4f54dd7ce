package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS documentos (
    id             INTEGER PRIMARY KEY,
    tipo_documento TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS personas (
    id               INTEGER PRIMARY KEY,
    razon_social     TEXT NOT NULL,
    direccion        TEXT NOT NULL DEFAULT '',
    telefono         TEXT NOT NULL DEFAULT '',
    tipo_persona     TEXT NOT NULL CHECK(tipo_persona IN ('Natural','Jurídica')),
    estado           INTEGER NOT NULL DEFAULT 1 CHECK(estado IN (0,1)),
    documento_id     INTEGER NOT NULL REFERENCES documentos(id),
    numero_documento TEXT NOT NULL,
    created_at       TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE TABLE IF NOT EXISTS clientes (
    id         INTEGER PRIMARY KEY,
    persona_id INTEGER NOT NULL UNIQUE REFERENCES personas(id),
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE TABLE IF NOT EXISTS marcas (
    id     INTEGER PRIMARY KEY,
    nombre TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS presentaciones (
    id     INTEGER PRIMARY KEY,
    nombre TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS categorias (
    id     INTEGER PRIMARY KEY,
    nombre TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS productos (
    id              INTEGER PRIMARY KEY,
    codigo          TEXT NOT NULL,
    nombre          TEXT NOT NULL,
    stock           INTEGER NOT NULL DEFAULT 0,
    descripcion     TEXT,
    precio          TEXT NOT NULL DEFAULT '0.00',
    estado          INTEGER NOT NULL DEFAULT 1 CHECK(estado IN (0,1)),
    marca_id        INTEGER NOT NULL REFERENCES marcas(id),
    presentacion_id INTEGER NOT NULL REFERENCES presentaciones(id),
    created_at      TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE TABLE IF NOT EXISTS categoria_producto (
    id           INTEGER PRIMARY KEY,
    producto_id  INTEGER NOT NULL REFERENCES productos(id),
    categoria_id INTEGER NOT NULL REFERENCES categorias(id),
    UNIQUE(producto_id, categoria_id)
);

CREATE INDEX IF NOT EXISTS idx_personas_estado ON personas(estado);
CREATE INDEX IF NOT EXISTS idx_productos_estado ON productos(estado);
CREATE INDEX IF NOT EXISTS idx_categoria_producto_producto_id ON categoria_producto(producto_id);
`

// Open opens or creates the SQLite database and initializes the schema.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// lookupOrCreate returns the id of the row in a name catalog table (marcas,
// presentaciones, categorias, documentos), inserting it first if needed.
func lookupOrCreate(tx *sql.Tx, table, column, name string) (int64, error) {
	var id int64
	err := tx.QueryRow(fmt.Sprintf("SELECT id FROM %s WHERE %s = ?", table, column), name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up %s %q: %w", table, name, err)
	}

	result, err := tx.Exec(fmt.Sprintf("INSERT INTO %s (%s) VALUES (?)", table, column), name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s %q: %w", table, name, err)
	}
	id, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}
