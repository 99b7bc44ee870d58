package dto

import "time"

// SignupInput fields are checked in declaration order; the first failure wins.
type SignupInput struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"notblank,email"`
	Password string `json:"password" validate:"notblank,maxbytes=72"`
	Confirm  string `json:"confirm" validate:"eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

type AccountOutput struct {
	ID        string
	Name      string
	Email     string
	Demo      bool
	CreatedAt time.Time
}
