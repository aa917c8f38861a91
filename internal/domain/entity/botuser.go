package entity

// Áreas válidas para Botuser.
var BotuserAreas = []string{"P", "A", "B", "T", "G"}

// Botuser es la identidad de un usuario del canal de bot (WhatsApp). El
// teléfono es único a nivel global: crear de nuevo con el mismo teléfono es un
// upsert que refresca campos y suma asociaciones, nunca un duplicado.
type Botuser struct {
	ID         int64
	Name       string
	Phone      string
	Email      string
	CreateUser bool
	CanSOS     bool
	AdminPdf   bool
	Manager    bool
	Area       string // P, A, B, T, G
	CreatedBy  string
	Clients    []Client // asociaciones many-to-many, cargadas por el repositorio
}
