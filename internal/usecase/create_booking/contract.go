package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/internal/integrations/profileservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// BlockRepository интерфейс репозитория блокировок слотов
type BlockRepository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.AvailabilityBlock, error)
}

// ServiceTypeRepository интерфейс репозитория услуг
type ServiceTypeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceType, error)
}

// ProfileClient интерфейс клиента сервиса профилей
type ProfileClient interface {
	GetProfileWithGracefulDegradation(ctx context.Context, userID uuid.UUID) (*profileservice.Profile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс доменных метрик бронирования
type Metrics interface {
	IncBooking(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) IncBooking(string) {}
