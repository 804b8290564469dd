package entity

import "time"

// Category representa una categoría de artículos. ParentCategoryID vacío si es
// raíz; las categorías de una organización forman un bosque (sin ciclos, el
// caso de uso lo verifica al asignar el padre).
type Category struct {
	ID               string
	OrgID            string
	Name             string
	Description      string
	ParentCategoryID string
	CreatedBy        string
	CreatedAt        time.Time
}
