package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Catequista - operador del sistema (login).
type Catequista struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nombre   string             `bson:"nombre" json:"nombre"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // hash bcrypt, nunca sale en JSON
	Rol      string             `bson:"rol" json:"rol"`
}

// LoginForm son las credenciales del formulario de ingreso.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}
