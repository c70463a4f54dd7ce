package db

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"mantenedor/internal/model"
)

// categorySep joins category names inside GROUP_CONCAT; the ASCII unit
// separator never appears in a category name.
const categorySep = "\x1f"

// ListProducts retrieves all products with brand, presentation and categories.
func ListProducts(db *sql.DB) ([]model.ProductRow, error) {
	query := `
		SELECT
			p.id,
			p.codigo,
			p.nombre,
			p.precio,
			p.stock,
			m.nombre,
			pr.nombre,
			GROUP_CONCAT(c.nombre, char(31)) AS categorias,
			p.estado
		FROM productos p
		JOIN marcas m ON m.id = p.marca_id
		JOIN presentaciones pr ON pr.id = p.presentacion_id
		LEFT JOIN categoria_producto cp ON cp.producto_id = p.id
		LEFT JOIN categorias c ON c.id = cp.categoria_id
		GROUP BY p.id
		ORDER BY p.nombre
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var results []model.ProductRow
	for rows.Next() {
		var p model.ProductRow
		var categorias sql.NullString
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Precio, &p.Stock, &p.Marca, &p.Presentacion, &categorias, &p.Estado); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		if categorias.Valid && categorias.String != "" {
			p.Categorias = strings.Split(categorias.String, categorySep)
			sort.Strings(p.Categorias)
		}
		results = append(results, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return results, nil
}

// InsertProduct creates a product, creating its brand, presentation and
// categories on the fly.
func InsertProduct(db *sql.DB, p model.NewProduct) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	marcaID, err := lookupOrCreate(tx, "marcas", "nombre", p.Marca)
	if err != nil {
		return 0, err
	}
	presentacionID, err := lookupOrCreate(tx, "presentaciones", "nombre", p.Presentacion)
	if err != nil {
		return 0, err
	}

	var descripcion interface{}
	if p.Descripcion != "" {
		descripcion = p.Descripcion
	}

	result, err := tx.Exec(`
		INSERT INTO productos (codigo, nombre, stock, descripcion, precio, estado, marca_id, presentacion_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Codigo, p.Nombre, p.Stock, descripcion, p.Precio.StringFixed(2), p.Estado, marcaID, presentacionID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	for _, name := range p.Categorias {
		categoriaID, err := lookupOrCreate(tx, "categorias", "nombre", name)
		if err != nil {
			return 0, err
		}
		if _, err := tx.Exec("INSERT INTO categoria_producto (producto_id, categoria_id) VALUES (?, ?)", id, categoriaID); err != nil {
			return 0, fmt.Errorf("failed to link category %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}
