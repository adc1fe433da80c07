package dto

import "time"

type CustomerRegistrationDTO struct {
	FirstName   string    `json:"FirstName"`
	LastName    string    `json:"LastName"`
	Email       string    `json:"Email"`
	PhoneNumber string    `json:"PhoneNumber"`
	DateOfBirth time.Time `json:"DateOfBirth"`
}

type CustomerUpdateDTO struct {
	FirstName   string    `json:"FirstName"`
	LastName    string    `json:"LastName"`
	Email       string    `json:"Email"`
	PhoneNumber string    `json:"PhoneNumber"`
	DateOfBirth time.Time `json:"DateOfBirth"`
}

type CustomerResponseDTO struct {
	Id          uint      `json:"Id"`
	FirstName   string    `json:"FirstName"`
	LastName    string    `json:"LastName"`
	Email       string    `json:"Email"`
	PhoneNumber string    `json:"PhoneNumber"`
	DateOfBirth time.Time `json:"DateOfBirth"`
	IsActive    bool      `json:"IsActive"`
}

type AddressCreateDTO struct {
	AddressLine1 string `json:"AddressLine1"`
	AddressLine2 string `json:"AddressLine2"`
	City         string `json:"City"`
	State        string `json:"State"`
	PostalCode   string `json:"PostalCode"`
	Country      string `json:"Country"`
}

type AddressUpdateDTO struct {
	AddressLine1 string `json:"AddressLine1"`
	AddressLine2 string `json:"AddressLine2"`
	City         string `json:"City"`
	State        string `json:"State"`
	PostalCode   string `json:"PostalCode"`
	Country      string `json:"Country"`
}

type AddressResponseDTO struct {
	Id           uint   `json:"Id"`
	CustomerId   uint   `json:"CustomerId"`
	AddressLine1 string `json:"AddressLine1"`
	AddressLine2 string `json:"AddressLine2"`
	City         string `json:"City"`
	State        string `json:"State"`
	PostalCode   string `json:"PostalCode"`
	Country      string `json:"Country"`
}
