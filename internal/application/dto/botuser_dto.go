package dto

// BotuserResponse salida de un botuser con sus clientes asociados.
type BotuserResponse struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Phone      string           `json:"phone"`
	Email      string           `json:"email"`
	CreateUser bool             `json:"createUser"`
	CanSOS     bool             `json:"canSOS"`
	AdminPdf   bool             `json:"adminPdf"`
	Manager    bool             `json:"manager"`
	Area       string           `json:"area"`
	CreatedBy  string           `json:"createdBy"`
	Clients    []ClientResponse `json:"clients"`
}

// UpsertBotuserRequest alta/actualización por teléfono. Si el teléfono ya
// existe, los ClientIDs se SUMAN al conjunto de asociaciones; si no existe, el
// conjunto queda exactamente en ClientIDs.
type UpsertBotuserRequest struct {
	Name       string   `json:"name"`
	Phone      string   `json:"phone" validate:"required"`
	Email      string   `json:"email"`
	CreateUser bool     `json:"createUser"`
	CanSOS     bool     `json:"canSOS"`
	AdminPdf   bool     `json:"adminPdf"`
	Manager    bool     `json:"manager"`
	Area       string   `json:"area"`
	CreatedBy  string   `json:"createdBy"`
	ClientIDs  []string `json:"clientIds" validate:"required,min=1"`
}

// ClientBotusersResponse cliente con sus botusers asociados (vista de
// mantenimiento).
type ClientBotusersResponse struct {
	Client   ClientResponse    `json:"client"`
	Botusers []BotuserResponse `json:"botusers"`
}

// UpdateBotuserRequest actualización parcial por ID. Si ClientIDs viene, el
// conjunto de asociaciones se REEMPLAZA por completo.
type UpdateBotuserRequest struct {
	Name       *string  `json:"name"`
	Phone      *string  `json:"phone"`
	Email      *string  `json:"email"`
	CreateUser *bool    `json:"createUser"`
	CanSOS     *bool    `json:"canSOS"`
	AdminPdf   *bool    `json:"adminPdf"`
	Manager    *bool    `json:"manager"`
	Area       *string  `json:"area"`
	CreatedBy  *string  `json:"createdBy"`
	ClientIDs  []string `json:"clientIds"`
}
