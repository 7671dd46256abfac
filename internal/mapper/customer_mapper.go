package mapper

import (
	"apparelstore/internal/domain/model"
	"apparelstore/internal/dto"
)

func CustomerToDto(c model.Customer) dto.CustomerDto {
	return dto.CustomerDto{
		Base:         base(c.ID, c.Version, c.CreatedAt, c.UpdatedAt),
		Name:         c.Name,
		Email:        c.Email,
		PhoneNumber:  c.PhoneNumber,
		AddressLine1: c.AddressLine1,
		AddressLine2: c.AddressLine2,
		City:         c.City,
		State:        c.State,
		PostalCode:   c.PostalCode,
	}
}

func CustomerDtoToCustomer(d dto.CustomerDto) model.Customer {
	c := model.Customer{Version: derefOr(d.Version, 0)}
	UpdateCustomerFromDto(d, &c)
	return c
}

func UpdateCustomerFromDto(d dto.CustomerDto, c *model.Customer) {
	c.Name = d.Name
	c.Email = d.Email
	c.PhoneNumber = d.PhoneNumber
	c.AddressLine1 = d.AddressLine1
	c.AddressLine2 = d.AddressLine2
	c.City = d.City
	c.State = d.State
	c.PostalCode = d.PostalCode
}
