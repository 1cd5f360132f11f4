package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a user-defined expense label. Position preserves the order the
// user arranged their categories in; the categorizer iterates in that order.
type Category struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Icon      string    `db:"icon"`
	Color     string    `db:"color"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

// DefaultCategoryName is the fallback bucket for expenses that match nothing.
const DefaultCategoryName = "Otros"

// PredefinedCategories is the starter list offered during onboarding.
var PredefinedCategories = []Category{
	{Name: "Salida con amigos", Icon: "🍻", Color: "#FF6B6B"},
	{Name: "Almuerzo", Icon: "🍽️", Color: "#4ECDC4"},
	{Name: "Supermercado", Icon: "🛒", Color: "#45B7D1"},
	{Name: "Locomoción", Icon: "🚌", Color: "#96CEB4"},
	{Name: "Compra por internet", Icon: "💻", Color: "#FFEAA7"},
	{Name: "Pago de cuentas", Icon: "💳", Color: "#DDA0DD"},
	{Name: "Pensión", Icon: "🏠", Color: "#98D8C8"},
	{Name: "Crédito", Icon: "🏦", Color: "#FFB6C1"},
	{Name: "Entretenimiento", Icon: "🎬", Color: "#87CEEB"},
	{Name: "Salud", Icon: "⚕️", Color: "#90EE90"},
	{Name: "Educación", Icon: "📚", Color: "#F0E68C"},
	{Name: "Ropa", Icon: "👕", Color: "#DEB887"},
}
