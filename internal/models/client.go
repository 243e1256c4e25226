package models

import "time"

// Cliente do diretório (na interface aparece como "meetup")
type Client struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Image       string `gorm:"type:text;not null" json:"image"`
	CNPJ        string `gorm:"column:cnpj;size:14;not null" json:"cnpj"`
	Name        string `gorm:"size:100;not null" json:"name"`
	FantasyName string `gorm:"column:fantasyname;size:100;not null" json:"fantasyname"`

	CEP        string `gorm:"column:cep;size:8;not null" json:"cep"`
	Logradouro string `gorm:"size:100;not null" json:"logradouro"`
	Bairro     string `gorm:"size:100;not null" json:"bairro"`
	City       string `gorm:"size:100;not null" json:"city"`
	UF         string `gorm:"column:uf;size:2;not null" json:"uf"`
	Complement string `gorm:"size:100" json:"complement"`

	Email string `gorm:"size:100;not null" json:"email"`
	Phone string `gorm:"size:15;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}
