package models

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Material struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
