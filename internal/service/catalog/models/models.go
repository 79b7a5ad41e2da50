package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// Request модели

// CreateServiceTypeRequest запрос на создание услуги
type CreateServiceTypeRequest struct {
	Name            string   `json:"name" validate:"required,max=120"`
	Description     string   `json:"description" validate:"max=2000"`
	DurationMinutes int      `json:"durationMinutes" validate:"required,min=15,max=240"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsActive        *bool    `json:"isActive,omitempty"` // По умолчанию услуга активна
}

// UpdateServiceTypeRequest запрос на частичное обновление услуги
// Поля со значением nil не изменяются
type UpdateServiceTypeRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	DurationMinutes *int     `json:"durationMinutes,omitempty" validate:"omitempty,min=15,max=240"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

// IsEmpty проверяет, что в запросе нет ни одного изменяемого поля
func (r *UpdateServiceTypeRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.DurationMinutes == nil &&
		r.Price == nil && r.IsActive == nil
}

// Response модели

// ServiceTypeResponse ответ с данными услуги
type ServiceTypeResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           *float64  `json:"price,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceTypeListResponse ответ со списком услуг
type ServiceTypeListResponse struct {
	ServiceTypes []ServiceTypeResponse `json:"serviceTypes"`
}

// Методы конвертации

// ToDomain конвертирует запрос создания в domain модель
func (r *CreateServiceTypeRequest) ToDomain() *domain.ServiceType {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &domain.ServiceType{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		IsActive:        active,
	}
}

// ApplyTo накладывает изменения на существующую услугу
func (r *UpdateServiceTypeRequest) ApplyTo(st *domain.ServiceType) {
	if r.Name != nil {
		st.Name = *r.Name
	}
	if r.Description != nil {
		st.Description = *r.Description
	}
	if r.DurationMinutes != nil {
		st.DurationMinutes = *r.DurationMinutes
	}
	if r.Price != nil {
		st.Price = r.Price
	}
	if r.IsActive != nil {
		st.IsActive = *r.IsActive
	}
}

// FromDomainServiceType конвертирует domain модель в DTO
func FromDomainServiceType(st *domain.ServiceType) *ServiceTypeResponse {
	if st == nil {
		return nil
	}
	return &ServiceTypeResponse{
		ID:              st.ID,
		Name:            st.Name,
		Description:     st.Description,
		DurationMinutes: st.DurationMinutes,
		Price:           st.Price,
		IsActive:        st.IsActive,
		CreatedAt:       st.CreatedAt,
		UpdatedAt:       st.UpdatedAt,
	}
}

// FromDomainServiceTypeList конвертирует список domain моделей в DTO
func FromDomainServiceTypeList(items []*domain.ServiceType) *ServiceTypeListResponse {
	resp := &ServiceTypeListResponse{
		ServiceTypes: make([]ServiceTypeResponse, 0, len(items)),
	}
	for _, st := range items {
		if r := FromDomainServiceType(st); r != nil {
			resp.ServiceTypes = append(resp.ServiceTypes, *r)
		}
	}
	return resp
}
