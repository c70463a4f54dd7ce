package db

import (
	"database/sql"
	"fmt"
	"time"

	"mantenedor/internal/model"
)

// ListClients retrieves all clients joined with their persona and document
// type. Filtering happens client-side in the list screen.
func ListClients(db *sql.DB) ([]model.ClientRow, error) {
	query := `
		SELECT
			c.id,
			p.razon_social,
			d.tipo_documento,
			p.numero_documento,
			p.telefono,
			p.direccion,
			p.tipo_persona,
			p.estado,
			c.created_at
		FROM clientes c
		JOIN personas p ON p.id = c.persona_id
		JOIN documentos d ON d.id = p.documento_id
		ORDER BY p.razon_social
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var results []model.ClientRow
	for rows.Next() {
		var c model.ClientRow
		var createdAt string
		if err := rows.Scan(&c.ID, &c.RazonSocial, &c.TipoDocumento, &c.NumeroDocumento, &c.Telefono, &c.Direccion, &c.TipoPersona, &c.Estado, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			c.CreatedAt = t
		}
		results = append(results, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}

	return results, nil
}

// InsertClient creates a persona and the client referencing it.
func InsertClient(db *sql.DB, c model.NewClient) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	documentoID, err := lookupOrCreate(tx, "documentos", "tipo_documento", c.TipoDocumento)
	if err != nil {
		return 0, err
	}

	result, err := tx.Exec(`
		INSERT INTO personas (razon_social, direccion, telefono, tipo_persona, estado, documento_id, numero_documento)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.RazonSocial, c.Direccion, c.Telefono, c.TipoPersona, c.Estado, documentoID, c.NumeroDocumento)
	if err != nil {
		return 0, fmt.Errorf("failed to insert persona: %w", err)
	}
	personaID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	result, err = tx.Exec("INSERT INTO clientes (persona_id) VALUES (?)", personaID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert client: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

// CountClients returns the number of clients.
func CountClients(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM clientes").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return n, nil
}
