package toggle_block

import (
	"time"

	"github.com/m04kA/coaching-scheduler/internal/domain"
	"github.com/m04kA/coaching-scheduler/pkg/types"
)

// Request модель запроса на переключение блокировки слота
type Request struct {
	Caller domain.Identity // Должен быть администратором
	Date   time.Time       // Календарная дата
	Slot   types.SlotLabel // Время начала слота
}

// Response модель ответа с итоговым состоянием слота
type Response struct {
	Date      time.Time       // Календарная дата
	Slot      types.SlotLabel // Время начала слота
	StartTime time.Time       // Абсолютное время начала
	Blocked   bool            // true, если слот теперь заблокирован
}
