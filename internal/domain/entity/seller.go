package entity

// Seller represents a salesperson as supplied by the input dataset.
type Seller struct {
	ID        string `json:"id" yaml:"id" toml:"id" validate:"required"`
	FirstName string `json:"first_name" yaml:"first_name" toml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name" toml:"last_name"`
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty" toml:"start_date,omitempty"`
	Position  string `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`
}

// FullName retorna o nome de exibição do vendedor.
func (s Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}
