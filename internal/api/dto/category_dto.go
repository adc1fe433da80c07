package dto

type CategoryCreateDTO struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

type CategoryUpdateDTO struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

type CategoryResponseDTO struct {
	Id          uint   `json:"Id"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
}
